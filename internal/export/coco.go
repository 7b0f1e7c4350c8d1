package export

import (
	"encoding/json"
	"fmt"

	"github.com/poseek/poseek/pkg/types"
)

// COCO keypoint visibility flags: a placed point is labeled and visible,
// an absent point is not labeled.
const (
	VisibilityLabeled    = 2
	VisibilityNotLabeled = 0
)

// Fallback image dimensions when the image file cannot be probed.
const (
	DefaultImageWidth  = 1024
	DefaultImageHeight = 768
)

// COCOOptions controls category metadata and image dimension probing for
// the COCO export.
type COCOOptions struct {
	// CategoryName and Supercategory fill the single COCO category.
	// Empty values default to "mouse" and "animal".
	CategoryName  string
	Supercategory string

	// Dimensions probes the pixel size of an image by filename. When nil
	// or failing, the default 1024x768 is used.
	Dimensions func(filename string) (int, int, error)
}

type cocoImage struct {
	ID       int    `json:"id"`
	FileName string `json:"file_name"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

type cocoAnnotation struct {
	ID           int       `json:"id"`
	ImageID      int       `json:"image_id"`
	CategoryID   int       `json:"category_id"`
	Keypoints    []float64 `json:"keypoints"`
	NumKeypoints int       `json:"num_keypoints"`
	BBox         []float64 `json:"bbox"`
	Area         float64   `json:"area"`
}

type cocoCategory struct {
	ID            int                `json:"id"`
	Name          string             `json:"name"`
	Supercategory string             `json:"supercategory"`
	Keypoints     []string           `json:"keypoints"`
	Skeleton      []types.Connection `json:"skeleton"`
}

type cocoDataset struct {
	Images      []cocoImage      `json:"images"`
	Annotations []cocoAnnotation `json:"annotations"`
	Categories  []cocoCategory   `json:"categories"`
}

// COCO renders the session as a COCO keypoints dataset: one image and one
// annotation per visited image, and a single category derived from the
// schema. Keypoints interleave x, y, visibility in schema order; absent
// points are written as 0,0,0.
func COCO(sess *types.Session, opts COCOOptions) ([]byte, error) {
	schema := sess.Schema()

	category := cocoCategory{
		ID:            1,
		Name:          opts.CategoryName,
		Supercategory: opts.Supercategory,
		Keypoints:     schema.BodyParts,
		Skeleton:      schema.Connections,
	}
	if category.Name == "" {
		category.Name = "mouse"
	}
	if category.Supercategory == "" {
		category.Supercategory = "animal"
	}

	dataset := cocoDataset{
		Images:      []cocoImage{},
		Annotations: []cocoAnnotation{},
		Categories:  []cocoCategory{category},
	}

	id := 1
	for _, filename := range sess.Images() {
		if !sess.Visited(filename) {
			continue
		}
		st, err := sess.Store(filename)
		if err != nil {
			return nil, err
		}

		width, height := DefaultImageWidth, DefaultImageHeight
		if opts.Dimensions != nil {
			if w, h, err := opts.Dimensions(filename); err == nil {
				width, height = w, h
			}
		}

		dataset.Images = append(dataset.Images, cocoImage{
			ID:       id,
			FileName: filename,
			Width:    width,
			Height:   height,
		})
		dataset.Annotations = append(dataset.Annotations, buildAnnotation(id, schema, st))
		id++
	}

	data, err := json.MarshalIndent(dataset, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encoding coco dataset: %w", err)
	}
	return data, nil
}

// WriteCOCO atomically writes the COCO export to path.
func WriteCOCO(path string, sess *types.Session, opts COCOOptions) error {
	data, err := COCO(sess, opts)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

// buildAnnotation assembles the keypoint array, visible-point count, and
// bounding box for one image.
func buildAnnotation(id int, schema types.Schema, st *types.Store) cocoAnnotation {
	keypoints := make([]float64, 0, 3*len(schema.BodyParts))
	numKeypoints := 0

	minX, minY := 0.0, 0.0
	maxX, maxY := 0.0, 0.0
	for _, part := range schema.BodyParts {
		p, ok := st.Point(part)
		if !ok {
			keypoints = append(keypoints, 0, 0, VisibilityNotLabeled)
			continue
		}
		keypoints = append(keypoints, p.X, p.Y, VisibilityLabeled)
		if numKeypoints == 0 {
			minX, minY, maxX, maxY = p.X, p.Y, p.X, p.Y
		} else {
			minX = min(minX, p.X)
			minY = min(minY, p.Y)
			maxX = max(maxX, p.X)
			maxY = max(maxY, p.Y)
		}
		numKeypoints++
	}

	bbox := []float64{0, 0, 0, 0}
	if numKeypoints > 0 {
		bbox = []float64{minX, minY, maxX - minX, maxY - minY}
	}

	return cocoAnnotation{
		ID:           id,
		ImageID:      id,
		CategoryID:   1,
		Keypoints:    keypoints,
		NumKeypoints: numKeypoints,
		BBox:         bbox,
		Area:         bbox[2] * bbox[3],
	}
}
