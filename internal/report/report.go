// Package report exports the edited text blocks of a run as a docx
// transcript, one section per image, for operators who want a printable
// record next to the generated audio.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/gomutex/godocx"

	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/batch"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// WriteTranscript writes the block sequence to a docx file at outputPath.
func WriteTranscript(outputPath, title string, blocks []batch.Block) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	doc.AddParagraph("").AddText(title).Font(fontName).Size(16).Color("000000").Bold(true)
	doc.AddParagraph("").AddText(time.Now().Format("2006-01-02 15:04")).Font(fontName).Size(fontSize).Color("000000")
	doc.AddParagraph("")

	for _, blk := range blocks {
		doc.AddParagraph("").AddText(blk.ID).Font(fontName).Size(14).Color("000000").Bold(true)

		text := strings.TrimSpace(blk.Text)
		if text == "" {
			text = "(no text)"
		}
		for _, line := range strings.Split(text, "\n") {
			doc.AddParagraph("").AddText(line).Font(fontName).Size(fontSize).Color("000000")
		}
		doc.AddParagraph("")
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}
