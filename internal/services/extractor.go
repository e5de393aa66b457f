package services

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const wordprocessingNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

type TextExtractor interface {
	ExtractText(content []byte, filename string) (string, error)
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// FileExtension returns the lower-cased text after the last dot. A name
// without a dot is returned whole.
func FileExtension(filename string) string {
	return strings.ToLower(filename[strings.LastIndex(filename, ".")+1:])
}

// ExtractText implements TextExtractor.
func (e *textExtractor) ExtractText(content []byte, filename string) (string, error) {
	ext := FileExtension(filename)

	switch ext {
	case "pdf":
		text, err := extractPDFText(content)
		if err != nil {
			return "", NewAnalysisError(ErrKindExtraction, "Error extracting text from PDF", err)
		}
		return text, nil
	case "doc", "docx":
		text, err := extractDocxText(content)
		if err != nil {
			return "", NewAnalysisError(ErrKindExtraction, "Error extracting text from DOCX", err)
		}
		return text, nil
	default:
		return "", NewAnalysisError(ErrKindUnsupportedFormat, fmt.Sprintf("Unsupported file format: %s", ext), nil)
	}
}

func extractPDFText(content []byte) (text string, err error) {
	// The pdf package panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if !page.V.IsNull() {
			pageText, err := page.GetPlainText(nil)
			if err != nil {
				return "", fmt.Errorf("failed to read page %d: %w", pageIndex, err)
			}
			textBuilder.WriteString(pageText)
		}
		textBuilder.WriteString("\n")
	}

	return textBuilder.String(), nil
}

func extractDocxText(content []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return paragraphText(doc.Editable().GetContent())
}

// paragraphText flattens word/document.xml into one line per w:p.
func paragraphText(documentXML string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(documentXML))

	var (
		textBuilder strings.Builder
		runDepth    int
		inText      bool
	)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read document.xml: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Space != wordprocessingNS {
				continue
			}
			switch t.Name.Local {
			case "r":
				runDepth++
			case "t":
				inText = runDepth > 0
			case "tab":
				if runDepth > 0 {
					textBuilder.WriteString("\t")
				}
			case "br", "cr":
				if runDepth > 0 {
					textBuilder.WriteString("\n")
				}
			}
		case xml.EndElement:
			if t.Name.Space != wordprocessingNS {
				continue
			}
			switch t.Name.Local {
			case "r":
				if runDepth > 0 {
					runDepth--
				}
			case "t":
				inText = false
			case "p":
				textBuilder.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				textBuilder.Write(t)
			}
		}
	}

	return textBuilder.String(), nil
}
