package mediatype_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mediatype"
)

func TestParse_TextPlain(t *testing.T) {
	t.Parallel()

	mt, err := mediatype.Parse("text/plain")
	require.NoError(t, err)

	assert.Equal(t, mediatype.Text, mt.Type())
	sub, ok := mt.Sub()
	assert.True(t, ok)
	assert.Equal(t, "plain", sub)
	tree, ok := mt.Tree()
	assert.True(t, ok)
	assert.Equal(t, mediatype.Standards, tree)
	_, ok = mt.Suffix()
	assert.False(t, ok)
	assert.Empty(t, mt.Parameters())
}

func TestParse_VendorTree(t *testing.T) {
	t.Parallel()

	mt, err := mediatype.Parse("application/vnd.oasis.opendocument.text")
	require.NoError(t, err)

	assert.Equal(t, mediatype.Application, mt.Type())
	tree, _ := mt.Tree()
	assert.Equal(t, mediatype.Vendor, tree)
	sub, _ := mt.Sub()
	assert.Equal(t, "oasis.opendocument.text", sub)
}

func TestParse_Trees(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		tree mediatype.Tree
		sub  string
	}{
		{"application/prs.btf", mediatype.Personal, "btf"},
		{"application/x.foo.bar", mediatype.Private, "foo.bar"},
		{"application/x-gzip", mediatype.Standards, "x-gzip"},
		{"application/spam.eggs", mediatype.UnregisteredTree("spam"), "eggs"},
	}

	for _, c := range cases {
		mt, err := mediatype.Parse(c.in)
		require.NoError(t, err, c.in)
		tree, _ := mt.Tree()
		assert.Equal(t, c.tree, tree, c.in)
		sub, _ := mt.Sub()
		assert.Equal(t, c.sub, sub, c.in)
	}
}

func TestParse_Suffix(t *testing.T) {
	t.Parallel()

	mt, err := mediatype.Parse("image/svg+xml")
	require.NoError(t, err)
	assert.Equal(t, mediatype.Image, mt.Type())
	sub, _ := mt.Sub()
	assert.Equal(t, "svg", sub)
	suffix, ok := mt.Suffix()
	assert.True(t, ok)
	assert.Equal(t, "xml", suffix)

	// the last plus separates the suffix, the first dot the tree
	mt, err = mediatype.Parse("application/vnd.a.b+c+json")
	require.NoError(t, err)
	tree, _ := mt.Tree()
	assert.Equal(t, mediatype.Vendor, tree)
	sub, _ = mt.Sub()
	assert.Equal(t, "a.b+c", sub)
	suffix, _ = mt.Suffix()
	assert.Equal(t, "json", suffix)
}

func TestParse_Wildcards(t *testing.T) {
	t.Parallel()

	mt, err := mediatype.Parse("audio/*")
	require.NoError(t, err)
	assert.Equal(t, mediatype.Audio, mt.Type())
	_, ok := mt.Sub()
	assert.False(t, ok)
	assert.True(t, mt.IsWildcardSubtype())
	assert.False(t, mt.IsWildcard())

	mt, err = mediatype.Parse("*/*")
	require.NoError(t, err)
	assert.True(t, mt.IsWildcard())
	assert.Equal(t, mediatype.Wildcard(), mt)
	assert.True(t, mediatype.Wildcard().Equal(mt))
	assert.True(t, (&mediatype.MediaType{}).Equal(mt))

	// a subtype is only a wildcard when it is exactly "*"
	mt, err = mediatype.Parse("image/*+xml")
	require.NoError(t, err)
	sub, ok := mt.Sub()
	assert.True(t, ok)
	assert.Equal(t, "*", sub)
}

func TestParse_CaseInsensitive(t *testing.T) {
	t.Parallel()

	upper, err := mediatype.Parse("TEXT/PLAIN; CHARSET=UTF-8")
	require.NoError(t, err)
	lower, err := mediatype.Parse("text/plain; charset=UTF-8")
	require.NoError(t, err)

	assert.True(t, upper.Equal(lower))
	assert.Equal(t, lower, upper)

	mt, err := mediatype.Parse("Application/VND.MS-FontObject")
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.ms-fontobject", mt.String())
}

func TestParse_RegisteredTypes(t *testing.T) {
	t.Parallel()

	types := map[string]mediatype.Type{
		"text":        mediatype.Text,
		"image":       mediatype.Image,
		"audio":       mediatype.Audio,
		"video":       mediatype.Video,
		"application": mediatype.Application,
		"multipart":   mediatype.Multipart,
		"message":     mediatype.Message,
		"model":       mediatype.Model,
		"example":     mediatype.UnregisteredType("example"),
		"*":           mediatype.AnyType,
	}

	for name, want := range types {
		mt, err := mediatype.Parse(name + "/foo")
		require.NoError(t, err, name)
		assert.Equal(t, want, mt.Type(), name)
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	bad := []string{
		"",
		"   \t",
		"text",
		"text; charset=utf-8",
		"/plain",
		"text/",
		"text/; charset=utf-8",
		strings.Repeat("t", 128) + "/plain",
		"text/" + strings.Repeat("p", 128),
		"text/plain; " + strings.Repeat("n", 128) + "=v",
		"application/x-stuff; title*=no-quotes",
		"application/x-stuff; title*=one'quote",
		"image/+xml",
		"application/vnd.",
		"application/x.+json",
		"image/svg+",
		"image/svg+xml+",
		"x/y; a**=us'en'v",
	}

	for _, in := range bad {
		_, err := mediatype.Parse(in)
		assert.ErrorIs(t, err, mediatype.ErrInvalid, "%q", in)
	}
}

func TestParse_OnlyStarIsWildcardSubtype(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"image/+xml", "application/vnd.", "application/x.+json", "image/svg+"} {
		mt, err := mediatype.Parse(in)
		if assert.Error(t, err, in) {
			assert.Nil(t, mt, in)
		}
	}

	mt, err := mediatype.Parse("image/*")
	require.NoError(t, err)
	assert.True(t, mt.IsWildcardSubtype())

	mt, err = mediatype.Parse("image/svg+xml")
	require.NoError(t, err)
	assert.False(t, mt.IsWildcardSubtype())
	assert.False(t, mt.EqualMimePortion(mediatype.MustParse("image/svg")))
}

func TestParse_DecodeError(t *testing.T) {
	t.Parallel()

	_, err := mediatype.ParseBytes([]byte("text/pl\xffain"))
	require.Error(t, err)
	assert.ErrorIs(t, err, mediatype.ErrDecode)

	var de *mediatype.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "subtype", de.Token)
	assert.Equal(t, 2, de.Offset)

	_, err = mediatype.ParseBytes([]byte("te\xc3xt/plain"))
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "type", de.Token)

	_, err = mediatype.ParseBytes([]byte("text/plain; title=\"\xfe\""))
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "title", de.Token)

	// percent-encoded bytes are checked after decoding
	_, err = mediatype.Parse("text/plain; title*=utf-8''%ff")
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "title", de.Token)
}

func TestParse_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	mt, err := mediatype.Parse(" \r\n\ttext/html\t\n ")
	require.NoError(t, err)
	assert.Equal(t, "text/html", mt.String())
}

func TestParse_RFC6381(t *testing.T) {
	t.Parallel()

	cases := map[string]map[string]string{
		`video/3gpp2; codecs="sevc, s263"`:         {"codecs": "sevc, s263"},
		`audio/3gpp2; codecs=mp4a.E1`:              {"codecs": "mp4a.E1"},
		`example/*; codecs=a.bb.ccc.d`:             {"codecs": "a.bb.ccc.d"},
		`example/*; codecs="a.bb.ccc.d, e.fff"`:    {"codecs": "a.bb.ccc.d, e.fff"},
		`example/*; codecs*=''fo%2e`:               {"codecs": "fo."},
		`example/*; codecs*="''%25%20xz, gork"`:    {"codecs": "% xz, gork"},
		`example/*; codecs*=utf-8'en'caf%C3%A9`:    {"codecs": "café"},
		`example/*; codecs*=utf-8''it's'fine%21`:   {"codecs": "it's'fine!"},
		`example/*; a=1; codecs*=''x; codecs=plain`: {"a": "1", "codecs": "plain"},
	}

	for in, want := range cases {
		mt, err := mediatype.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, mt.Parameters(), in)
	}
}

func TestParse_RFC2231(t *testing.T) {
	t.Parallel()

	mt, err := mediatype.Parse("application/x-stuff; title*=us-ascii'en-us'This is%20%2A%2A%2Afun%2A%2A%2A")
	require.NoError(t, err)
	title, ok := mt.Parameter("title")
	assert.True(t, ok)
	assert.Equal(t, "This is ***fun***", title)
	_, ok = mt.Parameter("title*")
	assert.False(t, ok)
}

func TestParse_WithRawExtendedParameters(t *testing.T) {
	t.Parallel()

	mt, err := mediatype.Parse(
		"application/x-stuff; title*=us-ascii'en-us'Thisis%20%2A%2A%2Afun%2A%2A%2A",
		mediatype.WithRawExtendedParameters(),
	)
	require.NoError(t, err)

	expect := mediatype.New(mediatype.Application, mediatype.Standards, "x-stuff")
	expect.SetParameter("title*", "us-ascii'en-us'Thisis%20%2A%2A%2Afun%2A%2A%2A")
	assert.True(t, expect.Equal(mt))

	// no prefix is needed when the value is not decoded
	_, err = mediatype.Parse("a/b; t*=plain", mediatype.WithRawExtendedParameters())
	assert.NoError(t, err)
}

func TestParse_WithMaxTokenLength(t *testing.T) {
	t.Parallel()

	_, err := mediatype.Parse("application/json", mediatype.WithMaxTokenLength(4))
	assert.ErrorIs(t, err, mediatype.ErrInvalid)

	_, err = mediatype.Parse("text/json", mediatype.WithMaxTokenLength(4))
	assert.NoError(t, err)

	long := strings.Repeat("x", 500)
	mt, err := mediatype.Parse("text/"+long, mediatype.WithMaxTokenLength(0))
	require.NoError(t, err)
	sub, _ := mt.Sub()
	assert.Equal(t, long, sub)
}

func TestParse_RFC1341(t *testing.T) {
	t.Parallel()

	mt, err := mediatype.Parse("multipart/digest; boundary=\"---- next message ----\" ")
	require.NoError(t, err)
	expect := mediatype.New(mediatype.Multipart, mediatype.Standards, "digest")
	expect.SetParameter("boundary", "---- next message ----")
	assert.True(t, expect.Equal(mt))
	b, err := mt.Boundary()
	assert.NoError(t, err)
	assert.Equal(t, "---- next message ----", b)
}

func TestParse_Duplicates(t *testing.T) {
	t.Parallel()

	mt, err := mediatype.Parse("text/plain; charset=us-ascii; Charset=utf-8")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"charset": "utf-8"}, mt.Parameters())

	mt, err = mediatype.Parse("text/plain; flag; x=1; flag")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"flag": "", "x": "1"}, mt.Parameters())
}

func TestParseList(t *testing.T) {
	t.Parallel()

	mts, err := mediatype.ParseList(`text/html, application/xhtml+xml; charset="a,b" ,, image/*`)
	require.NoError(t, err)
	require.Len(t, mts, 3)
	assert.Equal(t, "text/html", mts[0].String())
	assert.Equal(t, `application/xhtml+xml; charset="a,b"`, mts[1].String())
	assert.Equal(t, "image/*", mts[2].String())

	mts, err = mediatype.ParseList("")
	assert.NoError(t, err)
	assert.Empty(t, mts)

	_, err = mediatype.ParseList("text/html, bogus, image/png")
	assert.ErrorIs(t, err, mediatype.ErrInvalid)
	assert.Contains(t, err.Error(), "list element 2")
}

func TestMustParse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "text/plain", mediatype.MustParse("text/plain").String())
	assert.Panics(t, func() { mediatype.MustParse("nope") })
}
