package progress

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/json-split/internal/core/domain"
)

func TestReporter_PlainLayout(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)

	r.Begin()
	r.FileStarted("in.json")
	r.ElementWritten("a", false)
	r.ElementWritten("a", true)
	r.FileStarted("two.json")
	r.ElementWritten("b", false)
	r.Finished(&domain.SplitReport{})

	want := `* Files
    * "in.json"
        * IDs
            * "a"
            * "a" (DUPE!)
    * "two.json"
        * IDs
            * "b"

Done!
`
	assert.Equal(t, want, buf.String())
}

func TestReporter_QuotesSpecialCharacters(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)

	r.ElementWritten("tab\there", false)

	assert.Equal(t, "            * \"tab\\there\"\n", buf.String())
}

func TestReporter_ColorKeepsText(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, true)

	r.ElementWritten("x", true)
	r.Finished(&domain.SplitReport{})

	out := buf.String()
	assert.Contains(t, out, `"x"`)
	assert.Contains(t, out, "(DUPE!)")
	assert.Contains(t, out, "Done!")
}

func TestIsTerminal_NonFile(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
}

func TestNewStyles_DefaultTheme(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, true)
	require.NotNil(t, r.styles)

	theme := DefaultTheme()
	assert.Equal(t, theme.Warning, r.styles.Dupe.GetForeground())
}
