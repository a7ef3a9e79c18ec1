package digraph

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"io"
	"regexp"
	"strings"
)

const triangleVeg = `vertex	{"id":0,"label":"a"}
vertex	{"id":1,"label":"a"}
vertex	{"id":2,"label":"a"}
edge	{"src":0,"targ":1,"label":"e"}
edge	{"src":1,"targ":2,"label":"e"}
edge	{"src":2,"targ":0,"label":"e"}
`

const triangleLg = `# a triangle
v 0 a
v 1 a
v 2 a
e 0 1 e
e 1 2 e
e 2 0 e
`

func input(text string) Input {
	return func() (io.Reader, func()) {
		return strings.NewReader(text), func() {}
	}
}

func loadVeg(t *testing.T, text string, dc *Config) *Digraph {
	dt, err := NewVegLoader(dc).Load(input(text))
	if err != nil {
		t.Fatal(err)
	}
	return dt
}

func TestVegLoader(t *testing.T) {
	x := assert.New(t)
	dt := loadVeg(t, triangleVeg, &Config{})
	x.Equal(3, len(dt.G.V))
	x.Equal(3, len(dt.G.E))
	x.Equal(1, len(dt.Indices.Schema))
	x.Equal("a", dt.Labels.Label(dt.G.V[0].Color))
}

func TestIntLoader(t *testing.T) {
	x := assert.New(t)
	dt, err := NewIntLoader(&Config{}).Load(input(triangleLg))
	x.Nil(err)
	x.Equal(3, len(dt.G.V))
	x.Equal(3, len(dt.G.E))
	x.Equal(1, len(dt.Indices.Schema))
}

func TestIntLoaderMalformed(t *testing.T) {
	x := assert.New(t)
	_, err := NewIntLoader(&Config{}).Load(input("v 0\n"))
	x.Error(err)
	_, err = NewIntLoader(&Config{}).Load(input("v 0 a\ne 0 1\n"))
	x.Error(err)
}

func TestLoadersAgree(t *testing.T) {
	x := assert.New(t)
	veg := loadVeg(t, triangleVeg, &Config{})
	lg, err := NewIntLoader(&Config{}).Load(input(triangleLg))
	x.Nil(err)

	vegSeeds, err := veg.Seeds()
	x.Nil(err)
	lgSeeds, err := lg.Seeds()
	x.Nil(err)
	x.Equal(len(vegSeeds), len(lgSeeds))
	x.Equal(vegSeeds[0].Label(), lgSeeds[0].Label())
}

func TestDotLoader(t *testing.T) {
	x := assert.New(t)
	text := `digraph {
	n0 [label="a"];
	n1 [label="a"];
	n2 [label="a"];
	n0 -> n1 [label="e"];
	n1 -> n2 [label="e"];
	n2 -> n0 [label="e"];
}`
	dt, err := NewDotLoader(&Config{}).Load(input(text))
	x.Nil(err)
	x.Equal(3, len(dt.G.V))
	x.Equal(3, len(dt.G.E))
	x.Equal(1, len(dt.Indices.Schema))
}

func TestExcludeFilter(t *testing.T) {
	x := assert.New(t)
	text := triangleVeg +
		"vertex\t{\"id\":3,\"label\":\"noise\"}\n" +
		"edge\t{\"src\":0,\"targ\":3,\"label\":\"e\"}\n"
	dt := loadVeg(t, text, &Config{Exclude: regexp.MustCompile(`^noise$`)})
	x.Equal(3, len(dt.G.V))
	x.Equal(3, len(dt.G.E))
}

func TestIncludeFilter(t *testing.T) {
	x := assert.New(t)
	text := triangleVeg +
		"vertex\t{\"id\":3,\"label\":\"noise\"}\n" +
		"edge\t{\"src\":0,\"targ\":3,\"label\":\"e\"}\n"
	dt := loadVeg(t, text, &Config{Include: regexp.MustCompile(`^(a|e)$`)})
	x.Equal(3, len(dt.G.V))
	x.Equal(3, len(dt.G.E))
}

func TestSeeds(t *testing.T) {
	x := assert.New(t)
	dt := loadVeg(t, triangleVeg, &Config{})
	seeds, err := dt.Seeds()
	x.Nil(err)
	x.Equal(1, len(seeds))
	x.Equal(1, seeds[0].Level())

	support, err := seeds[0].Support()
	x.Nil(err)
	x.Equal(3, support)
}

func TestExtensions(t *testing.T) {
	x := assert.New(t)
	dt := loadVeg(t, triangleVeg, &Config{})
	seeds, err := dt.Seeds()
	x.Nil(err)
	x.Equal(1, len(seeds))

	// the edge grows to the three vertex path only, a parallel edge
	// is never generated
	kids, err := seeds[0].Extensions()
	x.Nil(err)
	x.Equal(1, len(kids))
	x.Equal(2, kids[0].Level())
	x.Equal(seeds[0], kids[0].Parent())

	// the path grows to the four vertex path, the star, and closes
	// into the triangle
	grandkids, err := kids[0].Extensions()
	x.Nil(err)
	x.Equal(3, len(grandkids))
	for _, kid := range grandkids {
		t.Log(kid)
	}
}

func TestExtensionsMaxVertices(t *testing.T) {
	x := assert.New(t)
	dt := loadVeg(t, triangleVeg, &Config{MaxVertices: 3})
	seeds, err := dt.Seeds()
	x.Nil(err)
	kids, err := seeds[0].Extensions()
	x.Nil(err)
	x.Equal(1, len(kids))

	// growth past three vertices is cut off but the cycle close
	// to the triangle survives
	grandkids, err := kids[0].Extensions()
	x.Nil(err)
	x.Equal(1, len(grandkids))
	x.Equal(3, grandkids[0].Level())
}

func TestCheckExtension(t *testing.T) {
	x := assert.New(t)
	dt := loadVeg(t, triangleVeg, &Config{})
	a := dt.G.V[0].Color
	e := dt.G.E[0].Color
	x.Nil(dt.CheckExtension(a, a, e))
	err := dt.CheckExtension(a, a, e+100)
	x.Error(err)
	_, ok := err.(*UnknownLabelError)
	x.True(ok, "expected an UnknownLabelError got %T", err)
}

func TestMinEdgeTypeFrequency(t *testing.T) {
	x := assert.New(t)
	dt := loadVeg(t, triangleVeg, &Config{})
	seeds, err := dt.Seeds()
	x.Nil(err)
	// the a-a triple occurs three times and both pattern orientations
	// match each occurrence
	x.Equal(6, seeds[0].MinEdgeTypeFrequency())
}
