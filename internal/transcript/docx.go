// Package transcript renders caption cues as a readable document.
package transcript

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/autocaptions/internal/captions"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
)

// WriteDocx writes cues to outputPath as a .docx transcript, one paragraph
// per cue prefixed with its start time. Auto captions repeat rolling lines,
// so a line identical to the previous one is dropped.
func WriteDocx(title string, cues []captions.Cue, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), title, true, titleSize)
	doc.AddParagraph("")

	for _, line := range Lines(cues) {
		p := doc.AddParagraph("")
		addStyledRun(p, "["+line.Start+"] ", true, fontSize)
		addStyledRun(p, line.Text, false, fontSize)
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save %s: %w", outputPath, err)
	}
	return nil
}

// Lines flattens cues into single-line entries, skipping blank text and
// consecutive duplicates.
func Lines(cues []captions.Cue) []captions.Cue {
	var out []captions.Cue
	prev := ""
	for _, c := range cues {
		text := strings.Join(strings.Fields(c.Text), " ")
		if text == "" || text == prev {
			continue
		}
		prev = text
		out = append(out, captions.Cue{Start: c.Start, End: c.End, Text: text})
	}
	return out
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
