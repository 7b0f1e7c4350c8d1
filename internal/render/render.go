// Package render exports annotated copies of source images: skeleton
// lines and keypoint dots drawn over each annotated frame, everything
// else copied through untouched.
package render

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	_ "golang.org/x/image/bmp"

	"github.com/poseek/poseek/pkg/types"
)

// ExportSubdir is appended when the source and destination directories
// are the same, so originals are never overwritten.
const ExportSubdir = "Export"

// Options controls the drawing style.
type Options struct {
	// PointRadius is the keypoint dot radius in pixels. Zero means the
	// default of 4.
	PointRadius float64
}

// Directory renders every session image from srcDir into destDir.
// Annotated images get their keypoints and skeleton drawn; unannotated
// images are copied as-is. Returns the number of images written.
func Directory(srcDir, destDir string, sess *types.Session, opts Options) (int, error) {
	srcAbs, err := filepath.Abs(srcDir)
	if err != nil {
		return 0, fmt.Errorf("resolving source dir: %w", err)
	}
	destAbs, err := filepath.Abs(destDir)
	if err != nil {
		return 0, fmt.Errorf("resolving dest dir: %w", err)
	}
	if srcAbs == destAbs {
		destAbs = filepath.Join(destAbs, ExportSubdir)
	}
	if err := os.MkdirAll(destAbs, 0o755); err != nil {
		return 0, fmt.Errorf("creating dest dir: %w", err)
	}

	radius := opts.PointRadius
	if radius <= 0 {
		radius = 4
	}

	written := 0
	for _, filename := range sess.Images() {
		srcPath := filepath.Join(srcAbs, filename)
		destPath := filepath.Join(destAbs, filename)

		if !sess.Visited(filename) {
			if err := copyFile(srcPath, destPath); err != nil {
				return written, fmt.Errorf("copying %s: %w", filename, err)
			}
			written++
			continue
		}

		st, err := sess.Store(filename)
		if err != nil {
			return written, err
		}
		if st.Len() == 0 {
			if err := copyFile(srcPath, destPath); err != nil {
				return written, fmt.Errorf("copying %s: %w", filename, err)
			}
			written++
			continue
		}

		if err := renderImage(srcPath, destPath, sess.Schema(), st, radius); err != nil {
			return written, fmt.Errorf("rendering %s: %w", filename, err)
		}
		written++
	}
	return written, nil
}

// renderImage draws the skeleton and keypoints for one image.
// Connection lines go first so the dots sit on top of them.
func renderImage(srcPath, destPath string, schema types.Schema, st *types.Store, radius float64) error {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return fmt.Errorf("opening image: %w", err)
	}

	dc := gg.NewContextForImage(img)
	total := schema.NumKeypoints()

	lineWidth := radius * 0.4
	if lineWidth < 1 {
		lineWidth = 1
	}
	for _, conn := range schema.Connections {
		a, b := schema.BodyParts[conn[0]], schema.BodyParts[conn[1]]
		pa, okA := st.Point(a)
		pb, okB := st.Point(b)
		if !okA || !okB {
			continue
		}
		dc.SetColor(blend(PartColor(conn[0], total), PartColor(conn[1], total)))
		dc.SetLineWidth(lineWidth)
		dc.DrawLine(pa.X, pa.Y, pb.X, pb.Y)
		dc.Stroke()
	}

	for i, part := range schema.BodyParts {
		p, ok := st.Point(part)
		if !ok {
			continue
		}
		dc.SetColor(PartColor(i, total))
		dc.DrawCircle(p.X, p.Y, radius)
		dc.Fill()
	}

	if err := saveImage(dc.Image(), destPath); err != nil {
		return fmt.Errorf("saving image: %w", err)
	}
	return nil
}

// saveImage writes the rendered image, picking the encoder from the
// destination extension. imaging has no webp encoder, so webp output
// goes through chai2010/webp directly.
func saveImage(img image.Image, destPath string) error {
	if !strings.EqualFold(filepath.Ext(destPath), ".webp") {
		return imaging.Save(img, destPath, imaging.JPEGQuality(95))
	}

	f, err := os.Create(destPath)
	if err != nil {
		return err
	}
	if err := webp.Encode(f, img, &webp.Options{Lossless: true}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func copyFile(srcPath, destPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dest, err := os.Create(destPath)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dest, src); err != nil {
		dest.Close()
		return err
	}
	return dest.Close()
}
