package docgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const visualizerSource = `
public class OavpVisualizer {
  /**
   * Sets the stroke weight of the visualizer.
   * Applies to every subsequent shape.
   * @param weight The stroke weight in pixels
   * @return The visualizer, for chaining
   * @see fill
   */
  public OavpVisualizer strokeWeight(float weight) {
    return this;
  }

  /**
   * Moves the visualizer.
   * @param x Horizontal position
   * @param y Vertical position
   * @deprecated use place
   */
  public void moveTo(float x, float y) {
  }

  /**
   * Moves the visualizer in three dimensions.
   * @param x Horizontal position
   * @param y Vertical position
   * @param z Depth
   * @see place
   */
  public void moveTo(float x, float y, float z) {
  }
}
`

func TestComments(t *testing.T) {
	comments := Comments(visualizerSource)
	require.Len(t, comments, 3)
	assert.Equal(t, []string{
		"Sets the stroke weight of the visualizer.",
		"Applies to every subsequent shape.",
		"@param weight The stroke weight in pixels",
		"@return The visualizer, for chaining",
		"@see fill",
		"/",
		"public OavpVisualizer strokeWeight(float weight",
	}, comments[0])
}

func TestParse(t *testing.T) {
	docs, err := Parse(visualizerSource)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	stroke := docs[0]
	assert.Equal(t, "strokeWeight", stroke.Name)
	assert.Equal(t, []string{"strokeWeight(float weight)"}, stroke.Syntax)
	assert.Equal(t, "Sets the stroke weight of the visualizer. Applies to every subsequent shape.", stroke.Desc)
	assert.Equal(t, []Param{{Type: "float", Name: "weight", Desc: "The stroke weight in pixels"}}, stroke.Params)
	assert.Equal(t, "OavpVisualizer", stroke.ReturnType)
	assert.Equal(t, "The visualizer, for chaining", stroke.ReturnDesc)
	assert.Equal(t, "OavpVisualizer<br>The visualizer, for chaining", stroke.Returns())
	assert.Equal(t, []string{"fill"}, stroke.References)
}

func TestParse_OverloadsMerge(t *testing.T) {
	docs, err := Parse(visualizerSource)
	require.NoError(t, err)

	move := docs[1]
	assert.Equal(t, "moveTo", move.Name)
	assert.Equal(t, []string{"moveTo(float x, float y)", "moveTo(float x, float y, float z)"}, move.Syntax)
	assert.Equal(t, "Moves the visualizer.", move.Desc, "description comes from the first overload")
	require.Len(t, move.Params, 3, "params come from the last overload")
	assert.Equal(t, Param{Type: "float", Name: "z", Desc: "Depth"}, move.Params[2])
	assert.Equal(t, []string{"place"}, move.References)
}

func TestParse_ParamMismatch(t *testing.T) {
	src := `
  /**
   * Resets everything.
   * @param force Skip confirmation
   * @param quiet Suppress output
   */
  public void reset(boolean force) {
`
	_, err := Parse(src)
	require.Error(t, err)

	var mismatch *ParamMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "reset", mismatch.Method)
	assert.Equal(t, []string{"force", "quiet"}, mismatch.Documented)
	assert.Equal(t, []string{"boolean force"}, mismatch.Arguments)
}

func TestParse_NoArguments(t *testing.T) {
	src := `
  /**
   * Draws a frame.
   * @see setup
   */
  public void draw() {
`
	docs, err := Parse(src)
	require.NoError(t, err)

	require.Len(t, docs, 1)
	assert.Equal(t, "draw", docs[0].Name)
	assert.Equal(t, []string{"draw()"}, docs[0].Syntax)
	assert.Equal(t, "void", docs[0].ReturnType)
	assert.Empty(t, docs[0].Params)
	assert.Equal(t, []string{"setup"}, docs[0].References)
}

func TestParse_SkipsCommentWithoutDeclaration(t *testing.T) {
	docs, err := Parse("/** @see other ) {")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestParse_NoComments(t *testing.T) {
	docs, err := Parse("public class Empty {}")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestKebabCase(t *testing.T) {
	tests := map[string]string{
		"strokeWeight":    "stroke-weight",
		"moveTo":          "move-to",
		"draw":            "draw",
		"getHTTPResponse": "get-http-response",
		"setFFTBands2D":   "set-fft-bands2-d",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, KebabCase(in))
		})
	}
}
