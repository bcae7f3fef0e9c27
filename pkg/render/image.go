package render

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/limaJavier/tablebuilder/pkg/model"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	cellWidth    = 150
	cellHeight   = 40
	headerWidth  = 90
	headerHeight = 24
	glyphWidth   = 7 // basicfont.Face7x13 advance
	padding      = 4
)

var (
	background = color.White
	lineColor  = color.Gray{Y: 0xc0}
	textColor  = color.Black
)

// Draws the grid as a day × period table; consecutive periods with the same occupant are drawn as one block
func Image(grid *model.Grid) *image.NRGBA {
	days := model.Days()
	width := headerWidth + grid.Size()*cellWidth
	height := headerHeight + len(days)*cellHeight
	img := imaging.New(width, height, background)

	//** Headers
	for period := range grid.Size() {
		drawText(img, fmt.Sprintf("Period %d", period), headerWidth+period*cellWidth+padding, headerHeight-8, cellWidth)
	}
	for row, day := range days {
		drawText(img, day.String(), padding, headerHeight+row*cellHeight+cellHeight/2+4, headerWidth)
	}

	//** Lines
	for period := range grid.Size() + 1 {
		x := headerWidth + period*cellWidth
		fill(img, image.Rect(x, 0, x+1, height), lineColor)
	}
	for row := range len(days) + 1 {
		y := headerHeight + row*cellHeight
		fill(img, image.Rect(0, y, width, y+1), lineColor)
	}

	//** Cells
	for row, day := range days {
		y := headerHeight + row*cellHeight
		for _, span := range spans(grid, day) {
			x := headerWidth + span.start*cellWidth
			fill(img, image.Rect(x+1, y+1, x+span.length*cellWidth, y+cellHeight), subjectColor(span.occupant.Subject.Name()))
			drawText(img, label(span.occupant), x+padding, y+cellHeight/2+4, span.length*cellWidth)
		}
	}

	return img
}

func WritePNG(writer io.Writer, grid *model.Grid) error {
	return imaging.Encode(writer, Image(grid), imaging.PNG)
}

// Saves the rendered grid; the format is taken from the file extension
func SaveImage(grid *model.Grid, file string) error {
	return imaging.Save(Image(grid), file)
}

// Cuts text to the glyphs that fit in width pixels, never splitting a character
func fitText(text string, width int) string {
	maxGlyphs := (width - 2*padding) / glyphWidth
	if maxGlyphs <= 0 {
		return ""
	}

	runes := []rune(text)
	if len(runes) > maxGlyphs {
		return string(runes[:maxGlyphs])
	}
	return text
}

func fill(img draw.Image, rectangle image.Rectangle, c color.Color) {
	draw.Draw(img, rectangle, image.NewUniform(c), image.Point{}, draw.Src)
}

// Draws text with its baseline at y, cut to fit in width pixels
func drawText(img draw.Image, text string, x, y, width int) {
	text = fitText(text, width)
	if text == "" {
		return
	}

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(text)
}

// Pastel color that is stable for a given subject name
func subjectColor(name string) color.Color {
	hash := fnv.New32a()
	hash.Write([]byte(name))
	sum := hash.Sum32()
	return color.NRGBA{
		R: 0x80 + uint8(sum)%0x70,
		G: 0x80 + uint8(sum>>8)%0x70,
		B: 0x80 + uint8(sum>>16)%0x70,
		A: 0xff,
	}
}
