//go:build testing

package textsource

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testPage = `<!DOCTYPE html>
<html>
<head>
  <title>Release notes</title>
  <style>body { color: red; }</style>
</head>
<body>
  <h1>Release notes</h1>
  <script>var published = "January 1, 1970";</script>
  <div class="post">
    <p>Version 2 shipped on <b>March 5</b>, 2024.</p>
    <p class="updated">Updated <time datetime="2024-04-01">April 1, 2024</time></p>
  </div>
</body>
</html>`

const testRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Blog</title>
  <link>https://example.com</link>
  <item>
    <title>First post</title>
    <description>&lt;p&gt;Written on &lt;b&gt;June 3, 2023&lt;/b&gt;&lt;/p&gt;</description>
    <pubDate>Sat, 03 Jun 2023 10:00:00 GMT</pubDate>
  </item>
  <item>
    <title>Second post</title>
    <pubDate>Sun, 04 Jun 2023 10:00:00 GMT</pubDate>
  </item>
</channel>
</rss>`

const testAtom = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Blog</title>
  <entry>
    <title>Hello</title>
    <summary>Summary from May 2 2022</summary>
    <updated>2022-05-03T10:00:00Z</updated>
  </entry>
</feed>`

const testLatin1RSS = "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
	"<rss version=\"2.0\"><channel><title>Blog</title><item>" +
	"<title>Publi\xe9 le 5 mars 2024</title>" +
	"</item></channel></rss>"

func TestParseKind(t *testing.T) {
	type Test struct {
		Str          string
		ExpectedKind Kind
	}
	tests := []Test{
		{"", KindAuto},
		{"auto", KindAuto},
		{"HTML", KindHTML},
		{" feed ", KindFeed},
		{"text", KindText},
	}
	for _, test := range tests {
		kind, err := ParseKind(test.Str)
		require.NoError(t, err, test.Str)
		require.Equal(t, test.ExpectedKind, kind, test.Str)
	}

	_, err := ParseKind("pdf")
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestDetect(t *testing.T) {
	type Test struct {
		Content      string
		ExpectedKind Kind
	}
	tests := []Test{
		{"March 5 2024", KindText},
		{"", KindText},
		{"\ufeff  <!doctype html><p>hi</p>", KindHTML},
		{"<p>March 5</p>", KindHTML},
		{testPage, KindHTML},
		{testRSS, KindFeed},
		{testAtom, KindFeed},
		{`<?xml version="1.0"?><notes><note>March 5</note></notes>`, KindFeed},
	}
	for _, test := range tests {
		require.Equal(t, test.ExpectedKind, Detect(test.Content), test.Content)
	}
}

func TestHTML(t *testing.T) {
	text, err := FromString(testPage, KindHTML, "")
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"Release notes",
		"Version 2 shipped on March 5, 2024.",
		"Updated",
		"April 1, 2024",
	}, "\n"), text)
	require.NotContains(t, text, "1970")
	require.NotContains(t, text, "color")
}

func TestHTMLXPath(t *testing.T) {
	text, err := Read(strings.NewReader(testPage), KindAuto, `//p[@class="updated"]`)
	require.NoError(t, err)
	require.Equal(t, "Updated\nApril 1, 2024", text)

	text, err = FromString(testPage, KindHTML, "//title")
	require.NoError(t, err)
	require.Equal(t, "Release notes", text)

	_, err = FromString(testPage, KindHTML, "//p[")
	require.ErrorIs(t, err, ErrInvalidXPath)
}

func TestRSS(t *testing.T) {
	text, err := FromString(testRSS, KindAuto, "")
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"First post",
		"Written on June 3, 2023",
		"Sat, 03 Jun 2023 10:00:00 GMT",
		"",
		"Second post",
		"Sun, 04 Jun 2023 10:00:00 GMT",
	}, "\n"), text)
}

func TestAtom(t *testing.T) {
	text, err := FromString(testAtom, KindFeed, "")
	require.NoError(t, err)
	require.Equal(t, "Hello\nSummary from May 2 2022\n2022-05-03T10:00:00Z", text)
}

func TestFeedXPath(t *testing.T) {
	text, err := FromString(testRSS, KindFeed, "//item/title")
	require.NoError(t, err)
	require.Equal(t, "First post\n\nSecond post", text)
}

func TestLatin1Feed(t *testing.T) {
	text, err := FromString(testLatin1RSS, KindFeed, "")
	require.NoError(t, err)
	require.Equal(t, "Publié le 5 mars 2024", text)
}

func TestPlainText(t *testing.T) {
	content := "  <not html> March 5 2024\n"
	text, err := Read(strings.NewReader(content), KindText, "//p")
	require.NoError(t, err)
	require.Equal(t, content, text)

	_, err = FromString(content, Kind("pdf"), "")
	require.ErrorIs(t, err, ErrUnknownKind)
}
