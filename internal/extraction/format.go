package extraction

import (
	"archive/zip"
	"encoding/xml"
	"html"
	"io"
	"os"
	"regexp"
	"strings"
)

// Non-PDF formats are converted to plain text before chunking. The
// converters keep line structure where it carries meaning and drop
// markup that would pollute the embeddings.

// Pre-compiled expressions for markup stripping.
var (
	mdCodeBlock    = regexp.MustCompile("(?s)```[^`]*```")
	mdInlineCode   = regexp.MustCompile("`[^`]+`")
	mdImages       = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	mdLinks        = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	mdHeadings     = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	mdBlockquote   = regexp.MustCompile(`(?m)^>\s*`)
	mdRule         = regexp.MustCompile(`(?m)^[-*_]{3,}\s*$`)
	mdListMarkers  = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	mdNumberedList = regexp.MustCompile(`(?m)^\s*\d+\.\s+`)

	htmlScriptTag    = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	htmlStyleTag     = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	htmlNoscriptTag  = regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`)
	htmlHeadTag      = regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`)
	htmlSvgTag       = regexp.MustCompile(`(?is)<svg[^>]*>.*?</svg>`)
	htmlComments     = regexp.MustCompile(`(?s)<!--.*?-->`)
	htmlOpenBlocks   = regexp.MustCompile(`(?i)<(p|div|h[1-6]|li|tr|blockquote|pre|table|section|article)[^>]*>`)
	htmlCloseBlocks  = regexp.MustCompile(`(?i)</(p|div|br|hr|h[1-6]|li|tr|blockquote|pre|table|section|article)>`)
	htmlBrTags       = regexp.MustCompile(`(?i)<br\s*/?>`)
	htmlHrTags       = regexp.MustCompile(`(?i)<hr\s*/?>`)
	htmlAllTags      = regexp.MustCompile(`<[^>]+>`)
	htmlMultiSpaces  = regexp.MustCompile(`[ \t]+`)
	collapseNewlines = regexp.MustCompile(`\n{3,}`)
)

// markdownToText strips common markdown formatting, leaving prose.
func markdownToText(content string) string {
	content = mdCodeBlock.ReplaceAllString(content, "")
	content = mdInlineCode.ReplaceAllString(content, "")
	content = mdImages.ReplaceAllString(content, "")
	content = mdLinks.ReplaceAllString(content, "$1")
	content = mdHeadings.ReplaceAllString(content, "")
	content = mdBlockquote.ReplaceAllString(content, "")
	content = mdRule.ReplaceAllString(content, "")
	content = mdListMarkers.ReplaceAllString(content, "")
	content = mdNumberedList.ReplaceAllString(content, "")

	content = strings.ReplaceAll(content, "**", "")
	content = strings.ReplaceAll(content, "__", "")
	content = strings.ReplaceAll(content, "*", "")
	content = strings.ReplaceAll(content, "_", " ")

	content = collapseNewlines.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}

// htmlToText removes markup and extracts readable text content.
func htmlToText(content string) string {
	content = htmlScriptTag.ReplaceAllString(content, "")
	content = htmlStyleTag.ReplaceAllString(content, "")
	content = htmlNoscriptTag.ReplaceAllString(content, "")
	content = htmlHeadTag.ReplaceAllString(content, "")
	content = htmlSvgTag.ReplaceAllString(content, "")
	content = htmlComments.ReplaceAllString(content, "")

	// Block boundaries become newlines so paragraphs survive.
	content = htmlOpenBlocks.ReplaceAllString(content, "\n")
	content = htmlCloseBlocks.ReplaceAllString(content, "\n")
	content = htmlBrTags.ReplaceAllString(content, "\n")
	content = htmlHrTags.ReplaceAllString(content, "\n")

	content = htmlAllTags.ReplaceAllString(content, "")
	content = html.UnescapeString(content)
	content = htmlMultiSpaces.ReplaceAllString(content, " ")
	content = collapseNewlines.ReplaceAllString(content, "\n\n")

	lines := strings.Split(content, "\n")
	var result []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}

// docxToText extracts paragraph text from a DOCX file. The format is
// a ZIP archive; the text lives in word/document.xml.
func docxToText(path string) (string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return "", err
	}
	defer reader.Close()

	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", err
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}

		return parseDocxXML(content), nil
	}
	return "", nil
}

// docxDocument mirrors the parts of word/document.xml we read.
type docxDocument struct {
	Body struct {
		Paragraphs []docxParagraph `xml:"p"`
	} `xml:"body"`
}

type docxParagraph struct {
	Runs []docxRun `xml:"r"`
}

type docxRun struct {
	Text []docxText `xml:"t"`
}

type docxText struct {
	Content string `xml:",chardata"`
}

// parseDocxXML joins run text per paragraph, one line per paragraph.
func parseDocxXML(content []byte) string {
	var doc docxDocument
	if err := xml.Unmarshal(content, &doc); err != nil {
		return ""
	}

	var result strings.Builder
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			result.WriteString("\n")
		}
		for _, run := range para.Runs {
			for _, text := range run.Text {
				result.WriteString(text.Content)
			}
		}
	}
	return strings.TrimSpace(result.String())
}

// readMarkdown loads and strips a markdown file.
func readMarkdown(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return markdownToText(string(data)), nil
}

// readHTML loads and strips an HTML file.
func readHTML(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return htmlToText(string(data)), nil
}
