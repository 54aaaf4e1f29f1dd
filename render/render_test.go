package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/xpsdoc/model"
)

func samplePage() *model.Page {
	red, _ := model.ParseColor("#FF0000")
	opacity := 0.5
	shift := model.Translate(10, 20)

	inner := &model.Group{Name: "inner", Opacity: &opacity}
	inner.Append(&model.TextRun{
		Origin:        model.Point{X: 1, Y: 2},
		FontSize:      12,
		FontURI:       "/Resources/font.odttf",
		UnicodeString: "Hello",
		Fill:          &model.SolidColorBrush{Opacity: 1, Color: red},
	})

	outer := &model.Group{Name: "outer", Transform: &shift}
	outer.Append(&model.Path{
		Data:   &model.Geometry{Data: "M 0,0 L 1,1"},
		Fill:   &model.SolidColorBrush{Opacity: 1, Color: red},
		Stroke: &model.ImageBrush{ImageSource: "/Resources/img.png"},
	})
	outer.Append(inner)

	root := model.NewRoot()
	root.Append(outer)
	root.Append(&model.Path{
		Fill: &model.LinearGradientBrush{Stops: make([]model.GradientStop, 2)},
	})
	return model.NewPage(100, 100, root)
}

func TestDumper(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, samplePage().Render(NewDumper(&buf)))

	want := `Group name=outer transform=1,0,0,1,10,20
  Path data="M 0,0 L 1,1" fill=#FF0000 stroke=ImageBrush(/Resources/img.png)
  Group name=inner opacity=0.5
    TextRun origin=1,2 page=11,22 size=12 font=/Resources/font.odttf text="Hello" fill=#FF0000
Path fill=LinearGradientBrush(2 stops)
`
	assert.Equal(t, want, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestDumper_PagePosition(t *testing.T) {
	scale := model.Scale(2, 2)
	shift := model.Translate(100, 0)

	inner := &model.Group{Transform: &scale}
	inner.Append(&model.TextRun{Origin: model.Point{X: 5, Y: 5}, FontSize: 10, Transform: &shift})

	outer := &model.Group{Transform: &shift}
	outer.Append(inner)
	outer.Append(&model.TextRun{Origin: model.Point{X: 1, Y: 1}, FontSize: 10})

	root := model.NewRoot()
	root.Append(outer)
	root.Append(&model.TextRun{Origin: model.Point{X: 3, Y: 4}, FontSize: 10})

	var buf bytes.Buffer
	require.NoError(t, model.NewPage(0, 0, root).Render(NewDumper(&buf)))

	// The run's own transform applies first, then the groups inside out:
	// (5+100)*2+100 = 310, 5*2 = 10.
	want := `Group transform=1,0,0,1,100,0
  Group transform=2,0,0,2,0,0
    TextRun origin=5,5 page=310,10 size=10 transform=1,0,0,1,100,0
  TextRun origin=1,1 page=101,1 size=10
TextRun origin=3,4 size=10
`
	assert.Equal(t, want, buf.String())
}

func TestDumper_WriteError(t *testing.T) {
	err := samplePage().Render(NewDumper(failingWriter{}))
	assert.EqualError(t, err, "disk full")
}

func TestStats(t *testing.T) {
	var s Stats
	require.NoError(t, samplePage().Render(&s))

	assert.Equal(t, 2, s.Groups)
	assert.Equal(t, 2, s.Paths)
	assert.Equal(t, 1, s.TextRuns)
	assert.Equal(t, 5, s.Nodes())
	assert.Equal(t, 2, s.MaxDepth)
	assert.Equal(t, map[string]int{
		"SolidColorBrush":     2,
		"ImageBrush":          1,
		"LinearGradientBrush": 1,
	}, s.Brushes)
}

func TestStats_Accumulates(t *testing.T) {
	var s Stats
	require.NoError(t, samplePage().Render(&s))
	require.NoError(t, samplePage().Render(&s))
	require.NoError(t, model.NewPage(0, 0, nil).Render(&s))

	assert.Equal(t, 10, s.Nodes())
	assert.Equal(t, 2, s.MaxDepth)
}
