package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrict(t *testing.T) {
	assert.Equal(t, "hello", Strict("<script>alert(1)</script>hello"))
	assert.Equal(t, "plain text", Strict("plain text"))
	assert.Equal(t, "bold", Strict("<b>bold</b>"))
}

func TestStrictPtr(t *testing.T) {
	assert.Nil(t, StrictPtr(nil))

	in := "<img src=x onerror=alert(1)>ok"
	out := StrictPtr(&in)
	assert.Equal(t, "ok", *out)
}

func TestStrings(t *testing.T) {
	assert.Nil(t, Strings(nil), "nil must stay nil to preserve field absence")

	got := Strings([]string{"<i>Go</i>", "Redis"})
	assert.Equal(t, []string{"Go", "Redis"}, got)

	empty := Strings([]string{})
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestRich(t *testing.T) {
	assert.Equal(t, "<p>hi</p>", Rich("<p>hi</p>"))
	assert.NotContains(t, Rich(`<p onclick="x()">hi</p><script>bad()</script>`), "script")
}
