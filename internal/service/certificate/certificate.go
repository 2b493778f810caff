package certificate

import (
	"bytes"
	"fmt"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/julisunkan/LearnMan/pkg/logger"
)

const (
	certWidth  = 1200
	certHeight = 850
)

// Service renders completion certificates. The server keeps no completion
// state: the learner requests a certificate with a passing grade and the
// image is rendered on the fly.
type Service struct {
	log       logger.Log
	siteTitle string
	regular   *truetype.Font
	bold      *truetype.Font
}

func NewService(log logger.Log, siteTitle string) (*Service, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &Service{
		log:       log,
		siteTitle: siteTitle,
		regular:   regular,
		bold:      bold,
	}, nil
}

// Render draws a certificate of completion for the given module title and
// returns it as PNG bytes.
func (s *Service) Render(moduleTitle string, issuedAt time.Time) ([]byte, error) {
	dc := gg.NewContext(certWidth, certHeight)

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB255(44, 62, 80)
	dc.SetLineWidth(6)
	dc.DrawRectangle(30, 30, certWidth-60, certHeight-60)
	dc.Stroke()
	dc.SetLineWidth(2)
	dc.DrawRectangle(45, 45, certWidth-90, certHeight-90)
	dc.Stroke()

	centerX := float64(certWidth) / 2

	dc.SetFontFace(truetype.NewFace(s.bold, &truetype.Options{Size: 52}))
	dc.DrawStringAnchored("Certificate of Completion", centerX, 180, 0.5, 0.5)

	dc.SetFontFace(truetype.NewFace(s.regular, &truetype.Options{Size: 26}))
	dc.DrawStringAnchored("This certifies that you have successfully completed:", centerX, 330, 0.5, 0.5)

	dc.SetFontFace(truetype.NewFace(s.bold, &truetype.Options{Size: 38}))
	dc.DrawStringAnchored(moduleTitle, centerX, 420, 0.5, 0.5)

	dc.SetFontFace(truetype.NewFace(s.regular, &truetype.Options{Size: 22}))
	dc.DrawStringAnchored("Date: "+issuedAt.Format("January 2, 2006"), centerX, 560, 0.5, 0.5)

	dc.SetFontFace(truetype.NewFace(s.regular, &truetype.Options{Size: 18}))
	dc.DrawStringAnchored(s.siteTitle, centerX, 720, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode certificate: %w", err)
	}
	return buf.Bytes(), nil
}
