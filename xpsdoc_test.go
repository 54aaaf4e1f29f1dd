package xpsdoc

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/tsawler/xpsdoc/archive"
	"github.com/tsawler/xpsdoc/format"
	"github.com/tsawler/xpsdoc/markup"
	"github.com/tsawler/xpsdoc/model"
	"github.com/tsawler/xpsdoc/render"
)

const (
	nsXPS  = "http://schemas.microsoft.com/xps/2005/06"
	nsOXPS = "http://schemas.openxps.org/oxps/v1.0"
)

func packageRels(fixedRepType string) string {
	return `<?xml version="1.0" encoding="utf-8"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
	<Relationship Type="` + fixedRepType + `" Target="/FixedDocumentSequence.fdseq" Id="R0"/>
	<Relationship Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="/docProps/core.xml" Id="R1"/>
	<Relationship Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/thumbnail" Target="/Metadata/thumb.png" Id="R2"/>
	<Relationship Type="urn:unknown" Target="/ignored" Id="R3"/>
</Relationships>`
}

// samplePackage returns the parts of a package with one document and two
// pages. Page one holds a Canvas with a Path and a nested Canvas with a
// Glyphs run; page two is empty.
func samplePackage(ns string) map[string]string {
	relType := "http://schemas.microsoft.com/xps/2005/06/fixedrepresentation"
	structNS := "http://schemas.microsoft.com/xps/2005/06/documentstructure"
	if ns == nsOXPS {
		relType = "http://schemas.openxps.org/oxps/v1.0/fixedrepresentation"
		structNS = "http://schemas.openxps.org/oxps/v1.0/documentstructure"
	}

	return map[string]string{
		"_rels/.rels": packageRels(relType),
		"FixedDocumentSequence.fdseq": `<FixedDocumentSequence xmlns="` + ns + `">
			<DocumentReference Source="Documents/1/FixedDocument.fdoc"/>
		</FixedDocumentSequence>`,
		"Documents/1/_rels/FixedDocument.fdoc.rels": `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
			<Relationship Type="http://schemas.microsoft.com/xps/2005/06/documentstructure" Target="Structure/DocStructure.struct" Id="R1"/>
		</Relationships>`,
		"Documents/1/Structure/DocStructure.struct": `<DocumentStructure xmlns="` + structNS + `">
			<DocumentStructure.Outline>
				<DocumentOutline>
					<OutlineEntry OutlineLevel="1" Description="Intro" OutlineTarget="../FixedDocument.fdoc#intro"/>
					<OutlineEntry OutlineLevel="2" Description="Details"/>
				</DocumentOutline>
			</DocumentStructure.Outline>
		</DocumentStructure>`,
		"Documents/1/FixedDocument.fdoc": `<FixedDocument xmlns="` + ns + `">
			<PageContent Source="Pages/1.fpage" Width="100" Height="200">
				<PageContent.LinkTargets>
					<LinkTarget Name="intro"/>
				</PageContent.LinkTargets>
			</PageContent>
			<PageContent Width="1" Height="1"/>
			<PageContent Source="/Documents/1/Pages/2.fpage" Width="1" Height="1"/>
		</FixedDocument>`,
		"Documents/1/Pages/1.fpage": `<FixedPage xmlns="` + ns + `" Width="150" Name="first" xml:lang="en-US">
			<Canvas>
				<Path Data="M 0,0 L 10,10" Fill="#FF000000"/>
				<Canvas>
					<Glyphs OriginX="10" OriginY="20" FontRenderingEmSize="12" FontUri="../Resources/font.odttf" UnicodeString="Hello"/>
				</Canvas>
			</Canvas>
		</FixedPage>`,
		"Documents/1/Pages/2.fpage": `<FixedPage xmlns="` + ns + `" Width="816" Height="1056"/>`,
		"docProps/core.xml": `<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/">
			<dc:title>Sample</dc:title>
			<dc:creator>Tester</dc:creator>
		</cp:coreProperties>`,
		"Metadata/thumb.png": "\x89PNG",
	}
}

func str(s string) *string {
	return &s
}

// createTestPackage writes files into a ZIP container in a temp directory.
func createTestPackage(t *testing.T, files map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.xps")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range files {
		fw, err := w.Create(name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return path
}

// treeString renders a page into a compact string such as
// "Group[Path,Group[TextRun]]".
type treeString struct {
	parts []string
}

func (s *treeString) RenderGroup(g *model.Group) error {
	inner := &treeString{}
	if err := model.RenderChildren(inner, g.Children()); err != nil {
		return err
	}
	s.parts = append(s.parts, "Group["+inner.String()+"]")
	return nil
}

func (s *treeString) RenderPath(*model.Path) error {
	s.parts = append(s.parts, "Path")
	return nil
}

func (s *treeString) RenderTextRun(*model.TextRun) error {
	s.parts = append(s.parts, "TextRun")
	return nil
}

func (s *treeString) String() string {
	return strings.Join(s.parts, ",")
}

func renderTree(t *testing.T, p *model.Page) string {
	t.Helper()
	var s treeString
	require.NoError(t, p.Render(&s))
	return s.String()
}

func TestOpen(t *testing.T) {
	pkg, err := Open(createTestPackage(t, samplePackage(nsXPS)))
	require.NoError(t, err)

	assert.Equal(t, format.XPS, pkg.Format)
	require.Equal(t, 1, pkg.DocumentCount())
	assert.Equal(t, 2, pkg.PageCount())

	doc := pkg.Documents()[0]
	require.Len(t, doc.Pages, 2)

	first := doc.Pages[0]
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, "Group[Path,Group[TextRun]]", renderTree(t, first))
	require.NotNil(t, first.Name)
	assert.Equal(t, "first", *first.Name)
	assert.Equal(t, "en-US", first.Lang)
	assert.Equal(t, []string{"intro"}, first.Links)

	second := doc.Pages[1]
	assert.Nil(t, second.Name)
	assert.Equal(t, "", renderTree(t, second))
	w, h := second.Size()
	assert.Equal(t, 816.0, w)
	assert.Equal(t, 1056.0, h)

	require.NotNil(t, doc.Outline)
	assert.Equal(t, []model.OutlineEntry{
		{Level: str("1"), Description: str("Intro"), Target: str("../FixedDocument.fdoc#intro")},
		{Level: str("2"), Description: str("Details")},
	}, doc.Outline.Entries)
	assert.Same(t, first, doc.FindLinkTarget("intro"))
}

func TestOpen_PageSizeOverride(t *testing.T) {
	pkg, err := Open(createTestPackage(t, samplePackage(nsXPS)))
	require.NoError(t, err)

	// PageContent declares 100x200, the FixedPage only Width=150.
	w, h := pkg.Documents()[0].Pages[0].Size()
	assert.Equal(t, 150.0, w)
	assert.Equal(t, 200.0, h)
}

func TestOpen_MetadataAndThumbnail(t *testing.T) {
	path := createTestPackage(t, samplePackage(nsXPS))

	pkg, err := Open(path)
	require.NoError(t, err)
	require.NotNil(t, pkg.Metadata)
	assert.Equal(t, "Sample", pkg.Metadata.Title)
	assert.Equal(t, "Tester", pkg.Metadata.Author)
	assert.Equal(t, "Metadata/thumb.png", pkg.ThumbnailPart)
	assert.Equal(t, []byte("\x89PNG"), pkg.Thumbnail)

	pkg, err = Open(path, WithoutThumbnail())
	require.NoError(t, err)
	assert.Equal(t, "Metadata/thumb.png", pkg.ThumbnailPart)
	assert.Nil(t, pkg.Thumbnail)
}

func TestOpen_RelativePackageTargets(t *testing.T) {
	files := samplePackage(nsXPS)
	files["_rels/.rels"] = strings.NewReplacer(
		`Target="/FixedDocumentSequence.fdseq"`, `Target="FixedDocumentSequence.fdseq"`,
		`Target="/docProps/core.xml"`, `Target="docProps/core.xml"`,
		`Target="/Metadata/thumb.png"`, `Target="Metadata/thumb.png"`,
	).Replace(files["_rels/.rels"])
	require.NotContains(t, files["_rels/.rels"], `Target="/FixedDocumentSequence.fdseq"`)

	pkg, err := Open(createTestPackage(t, files))
	require.NoError(t, err)
	assert.Len(t, pkg.Warnings, 1, "only the page content without a source")
	assert.Equal(t, 1, pkg.DocumentCount())
	assert.Equal(t, 2, pkg.PageCount())
	require.NotNil(t, pkg.Metadata)
	assert.Equal(t, "Sample", pkg.Metadata.Title)
	assert.Equal(t, "Metadata/thumb.png", pkg.ThumbnailPart)
	assert.Equal(t, []byte("\x89PNG"), pkg.Thumbnail)
}

func TestOpen_Warnings(t *testing.T) {
	files := samplePackage(nsXPS)
	delete(files, "docProps/core.xml")

	pkg, err := Open(createTestPackage(t, files))
	require.NoError(t, err)
	assert.Nil(t, pkg.Metadata)

	require.Len(t, pkg.Warnings, 2)
	assert.Equal(t, "docProps/core.xml", pkg.Warnings[0].Part)
	assert.True(t, errors.Is(pkg.Warnings[0].Err, archive.ErrNotFound))
	assert.Equal(t, "Documents/1/FixedDocument.fdoc", pkg.Warnings[1].Part)
	assert.Contains(t, FormatWarnings(pkg.Warnings), "skipping page content without source")
}

func TestOpen_OXPS(t *testing.T) {
	pkg, err := Open(createTestPackage(t, samplePackage(nsOXPS)))
	require.NoError(t, err)

	assert.Equal(t, format.OXPS, pkg.Format)
	require.Equal(t, 2, pkg.PageCount())
	assert.Equal(t, "Group[Path,Group[TextRun]]", renderTree(t, pkg.Documents()[0].Pages[0]))
	require.NotNil(t, pkg.Documents()[0].Outline)
	assert.Len(t, pkg.Documents()[0].Outline.Entries, 2)
}

func TestOpenReader(t *testing.T) {
	data, err := os.ReadFile(createTestPackage(t, samplePackage(nsXPS)))
	require.NoError(t, err)

	pkg, err := OpenReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Equal(t, 2, pkg.PageCount())
}

func TestOpen_UTF16Parts(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()

	files := samplePackage(nsXPS)
	page, err := enc.String(`<?xml version="1.0" encoding="UTF-16"?>` + files["Documents/1/Pages/1.fpage"])
	require.NoError(t, err)
	files["Documents/1/Pages/1.fpage"] = page

	pkg, err := Open(createTestPackage(t, files))
	require.NoError(t, err)
	assert.Equal(t, "Group[Path,Group[TextRun]]", renderTree(t, pkg.Documents()[0].Pages[0]))
}

func TestOpen_NoFixedRepresentation(t *testing.T) {
	pkg, err := Open(createTestPackage(t, map[string]string{
		"_rels/.rels": `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"/>`,
	}))
	require.NoError(t, err)
	assert.Zero(t, pkg.DocumentCount())
	assert.Equal(t, format.Unknown, pkg.Format)
	assert.Len(t, pkg.Warnings, 1)
}

func TestOpen_CaseFolding(t *testing.T) {
	files := samplePackage(nsXPS)
	files["Documents/1/Pages/PAGE1.FPAGE"] = files["Documents/1/Pages/1.fpage"]
	delete(files, "Documents/1/Pages/1.fpage")
	files["Documents/1/FixedDocument.fdoc"] = strings.Replace(files["Documents/1/FixedDocument.fdoc"],
		`Source="Pages/1.fpage"`, `Source="pages/page1.fpage"`, 1)
	path := createTestPackage(t, files)

	_, err := Open(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrContainer)
	assert.ErrorIs(t, err, archive.ErrNotFound)

	pkg, err := Open(path, WithCaseFolding())
	require.NoError(t, err)
	assert.Equal(t, 2, pkg.PageCount())
}

func TestOpen_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(files map[string]string)
		kind   Kind
		part   string
		target error
	}{
		{
			name:   "missing package relationships",
			mutate: func(f map[string]string) { delete(f, "_rels/.rels") },
			kind:   KindContainer,
			part:   "_rels/.rels",
			target: archive.ErrNotFound,
		},
		{
			name:   "missing document relationships",
			mutate: func(f map[string]string) { delete(f, "Documents/1/_rels/FixedDocument.fdoc.rels") },
			kind:   KindContainer,
			part:   "Documents/1/_rels/FixedDocument.fdoc.rels",
			target: archive.ErrNotFound,
		},
		{
			name:   "missing page",
			mutate: func(f map[string]string) { delete(f, "Documents/1/Pages/2.fpage") },
			kind:   KindContainer,
			part:   "Documents/1/Pages/2.fpage",
			target: archive.ErrNotFound,
		},
		{
			name:   "package relationships with trailing junk",
			mutate: func(f map[string]string) { f["_rels/.rels"] += "<oops" },
			kind:   KindMarkup,
			part:   "_rels/.rels",
			target: markup.ErrMalformed,
		},
		{
			name:   "malformed sequence",
			mutate: func(f map[string]string) { f["FixedDocumentSequence.fdseq"] = "<FixedDocumentSequence" },
			kind:   KindMarkup,
			part:   "FixedDocumentSequence.fdseq",
			target: markup.ErrMalformed,
		},
		{
			name: "malformed page",
			mutate: func(f map[string]string) {
				f["Documents/1/Pages/1.fpage"] = `<FixedPage xmlns="` + nsXPS + `"><Canvas></FixedPage>`
			},
			kind:   KindMarkup,
			part:   "Documents/1/Pages/1.fpage",
			target: markup.ErrMalformed,
		},
		{
			name: "missing brush",
			mutate: func(f map[string]string) {
				f["Documents/1/Pages/1.fpage"] = `<FixedPage xmlns="` + nsXPS + `"><Path><Path.Fill/></Path></FixedPage>`
			},
			kind:   KindMissingBrush,
			part:   "Documents/1/Pages/1.fpage",
			target: markup.ErrMissingBrush,
		},
		{
			name:   "odd UTF-16 length",
			mutate: func(f map[string]string) { f["Documents/1/Pages/2.fpage"] = "\xff\xfe<\x00F" },
			kind:   KindDecode,
			part:   "Documents/1/Pages/2.fpage",
			target: archive.ErrOddLength,
		},
		{
			name:   "invalid UTF-8",
			mutate: func(f map[string]string) { f["Documents/1/FixedDocument.fdoc"] = "<FixedDocument>\xff</FixedDocument>" },
			kind:   KindDecode,
			part:   "Documents/1/FixedDocument.fdoc",
			target: archive.ErrInvalidUTF8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := samplePackage(nsXPS)
			tt.mutate(files)

			_, err := Open(createTestPackage(t, files))
			require.Error(t, err)

			var xe *Error
			require.ErrorAs(t, err, &xe)
			assert.Equal(t, tt.kind, xe.Kind)
			assert.Equal(t, tt.part, xe.Part)
			assert.ErrorIs(t, err, tt.target)
			assert.ErrorIs(t, err, &Error{Kind: tt.kind})
		})
	}
}

func TestOpen_FileErrors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.xps"))
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "corrupt.xps")
	require.NoError(t, os.WriteFile(path, []byte("not a zip file"), 0o644))
	_, err = Open(path)
	assert.ErrorIs(t, err, ErrContainer)
	assert.ErrorIs(t, err, archive.ErrInvalidArchive)
}

func TestError_Message(t *testing.T) {
	err := &Error{Kind: KindMissingBrush, Part: "Pages/1.fpage", Err: markup.ErrMissingBrush}
	assert.Equal(t, "xpsdoc: missing brush: Pages/1.fpage: markup: missing brush", err.Error())
	assert.Equal(t, "xpsdoc: io", (&Error{Kind: KindIO}).Error())
	assert.False(t, errors.Is(err, ErrMarkup))
}

func TestMust(t *testing.T) {
	path := createTestPackage(t, samplePackage(nsXPS))
	assert.NotPanics(t, func() {
		pkg := Must(Open(path))
		assert.Equal(t, 1, pkg.DocumentCount())
	})
	assert.Panics(t, func() {
		Must(Open(filepath.Join(t.TempDir(), "missing.xps")))
	})
}

func TestStatsOverPackage(t *testing.T) {
	pkg := Must(Open(createTestPackage(t, samplePackage(nsXPS))))

	var stats render.Stats
	for _, p := range pkg.Documents()[0].Pages {
		require.NoError(t, p.Render(&stats))
	}
	assert.Equal(t, 2, stats.Groups)
	assert.Equal(t, 1, stats.Paths)
	assert.Equal(t, 1, stats.TextRuns)
}
