package services

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	roadmapmod "github.com/yungbote/roadmap-backend/internal/modules/roadmap"
	"github.com/yungbote/roadmap-backend/internal/platform/logger"
)

// TimelineRenderer draws a progress timeline as a PNG.
type TimelineRenderer interface {
	RenderPNG(ctx context.Context, title string, tl roadmapmod.ProgressTimeline) ([]byte, error)
}

const (
	timelineWidth     = 960
	timelineHeader    = 96
	timelineRowHeight = 56
	timelineFooter    = 24
	timelineMarginX   = 48
)

var (
	timelineBG       = color.NRGBA{R: 0xF7, G: 0xF8, B: 0xFA, A: 0xFF}
	timelineInk      = color.NRGBA{R: 0x1F, G: 0x29, B: 0x37, A: 0xFF}
	timelineMuted    = color.NRGBA{R: 0x6B, G: 0x72, B: 0x80, A: 0xFF}
	timelineDone     = color.NRGBA{R: 0x10, G: 0xB9, B: 0x81, A: 0xFF}
	timelinePending  = color.NRGBA{R: 0xD1, G: 0xD5, B: 0xDB, A: 0xFF}
	timelineRailLine = color.NRGBA{R: 0xE5, G: 0xE7, B: 0xEB, A: 0xFF}
)

type timelineRenderer struct {
	log       *logger.Logger
	titleFace font.Face
	rowFace   font.Face
	smallFace font.Face
}

// NewTimelineRenderer loads fontPath when set, otherwise the bundled Go
// Regular face.
func NewTimelineRenderer(baseLog *logger.Logger, fontPath string) (TimelineRenderer, error) {
	serviceLog := baseLog.With("service", "TimelineRenderer")

	raw := goregular.TTF
	if p := strings.TrimSpace(fontPath); p != "" {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file: %w", err)
		}
		raw = b
		serviceLog.Info("Loading timeline font", "font", p)
	}
	parsed, err := truetype.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTF: %w", err)
	}

	return &timelineRenderer{
		log:       serviceLog,
		titleFace: newFace(parsed, 28),
		rowFace:   newFace(parsed, 18),
		smallFace: newFace(parsed, 14),
	}, nil
}

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

func (r *timelineRenderer) RenderPNG(ctx context.Context, title string, tl roadmapmod.ProgressTimeline) ([]byte, error) {
	height := timelineHeader + timelineRowHeight*len(tl.Timeline) + timelineFooter
	dc := gg.NewContext(timelineWidth, height)

	dc.SetColor(timelineBG)
	dc.DrawRectangle(0, 0, float64(timelineWidth), float64(height))
	dc.Fill()

	dc.SetFontFace(r.titleFace)
	dc.SetColor(timelineInk)
	dc.DrawStringAnchored(truncate(title, 60), timelineMarginX, 40, 0, 0.5)

	dc.SetFontFace(r.smallFace)
	dc.SetColor(timelineMuted)
	summary := fmt.Sprintf("%d of %d weeks completed", tl.CompletedWeeks, tl.TotalWeeks)
	dc.DrawStringAnchored(summary, timelineMarginX, 72, 0, 0.5)

	railX := float64(timelineMarginX + 12)
	if n := len(tl.Timeline); n > 1 {
		dc.SetColor(timelineRailLine)
		dc.SetLineWidth(4)
		dc.DrawLine(railX, rowCenter(0), railX, rowCenter(n-1))
		dc.Stroke()
	}

	for i, row := range tl.Timeline {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cy := rowCenter(i)
		if row.Completed {
			dc.SetColor(timelineDone)
		} else {
			dc.SetColor(timelinePending)
		}
		dc.DrawCircle(railX, cy, 10)
		dc.Fill()

		dc.SetFontFace(r.rowFace)
		dc.SetColor(timelineInk)
		dc.DrawStringAnchored(fmt.Sprintf("Week %d  %s", row.Week, truncate(row.Theme, 48)), railX+28, cy-8, 0, 0.5)

		if row.Project != "" {
			dc.SetFontFace(r.smallFace)
			dc.SetColor(timelineMuted)
			dc.DrawStringAnchored(truncate(row.Project, 80), railX+28, cy+14, 0, 0.5)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

func rowCenter(i int) float64 {
	return float64(timelineHeader + timelineRowHeight*i + timelineRowHeight/2)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
