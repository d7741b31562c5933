// Command seed populates a SitePin database with demo data: a project,
// two floor plans, and a batch of photos with placements on the active
// plan. Useful for trying the UI without real site data.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"sitepin/internal/autoplace"
	"sitepin/internal/config"
	"sitepin/internal/model"
	"sitepin/internal/store"
	"sitepin/pkg/geometry"

	"github.com/google/uuid"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()
	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	name := flag.String("project", "Demo Site", "project name")
	photoCount := flag.Int("photos", 8, "number of demo photos")
	flag.Parse()

	if err := run(*dbPath, *name, *photoCount); err != nil {
		log.Fatal(err)
	}
}

func run(dbPath, projectName string, photoCount int) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	assetDir := filepath.Join(filepath.Dir(dbPath), "demo-assets")
	if err := os.MkdirAll(assetDir, 0o755); err != nil {
		return err
	}

	project, err := st.CreateProject(ctx, projectName)
	if err != nil {
		return fmt.Errorf("creating project: %w", err)
	}
	log.Printf("Created project %s (%s)", project.Name, project.ID)

	plans := make([]model.Plan, 0, 2)
	for i, planName := range []string{"Ground Floor", "First Floor"} {
		path := filepath.Join(assetDir, fmt.Sprintf("plan-%d.png", i+1))
		w, h := 1600, 1200
		if err := writePlanImage(path, w, h, i); err != nil {
			return fmt.Errorf("writing plan image: %w", err)
		}
		plan, err := st.CreatePlan(ctx, model.Plan{
			ID:        uuid.NewString(),
			ProjectID: project.ID,
			Name:      planName,
			ImageURL:  path,
			Width:     w,
			Height:    h,
		})
		if err != nil {
			return fmt.Errorf("creating plan: %w", err)
		}
		plans = append(plans, plan)
		log.Printf("Created plan %s (active=%v)", plan.Name, plan.IsActive)
	}

	gen := autoplace.New()
	captured := time.Now().Add(-72 * time.Hour)
	for i := 0; i < photoCount; i++ {
		path := filepath.Join(assetDir, fmt.Sprintf("photo-%d.png", i+1))
		if err := writePhotoImage(path, i); err != nil {
			return fmt.Errorf("writing photo image: %w", err)
		}

		photo := model.Photo{
			ID:        uuid.NewString(),
			ProjectID: project.ID,
			ImageURL:  path,
		}
		// Geotag every other photo and let it carry a detection.
		if i%2 == 0 {
			lat := 52.3702 + float64(i)*0.0001
			lon := 4.8952 + float64(i)*0.0001
			at := captured.Add(time.Duration(i) * time.Hour)
			photo.Latitude = &lat
			photo.Longitude = &lon
			photo.CapturedAt = &at
			photo.Detections = []model.Detection{
				{Label: "outlet", Box: demoBox(i)},
			}
		}

		created, err := st.CreatePhoto(ctx, photo)
		if err != nil {
			return fmt.Errorf("creating photo: %w", err)
		}

		// Pin the first half of the photos to the active plan.
		if i < photoCount/2 {
			pos := gen.Generate(float64(plans[0].Width), float64(plans[0].Height), autoplace.DefaultMargin)
			method := model.MethodManual
			if created.HasLocation() {
				method = model.MethodGPSSuggested
			}
			if _, err := st.UpsertPlacement(ctx, created.ID, plans[0].ID, pos.X, pos.Y, method); err != nil {
				return fmt.Errorf("placing photo: %w", err)
			}
		}
	}
	log.Printf("Created %d photos (%d placed) in %s", photoCount, photoCount/2, dbPath)

	return nil
}

// demoBox alternates pixel and fractional detection boxes so both
// normalization paths show up in the UI.
func demoBox(i int) geometry.BoundingBox {
	if i%4 == 0 {
		return geometry.BoundingBox{X: 120, Y: 160, Width: 200, Height: 150}
	}
	return geometry.BoundingBox{X: 0.15, Y: 0.2, Width: 0.25, Height: 0.2}
}

// writePlanImage renders a plain grid so the viewer has something to
// pan and zoom over.
func writePlanImage(path string, w, h, variant int) error {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := color.NRGBA{R: 0xF5, G: 0xF2, B: 0xEA, A: 0xFF}
	line := color.NRGBA{R: 0x2E, G: 0x86, B: 0xC1, A: 0xFF}
	if variant%2 == 1 {
		line = color.NRGBA{R: 0xE6, G: 0x7E, B: 0x22, A: 0xFF}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x%100 == 0 || y%100 == 0 {
				img.Set(x, y, line)
			} else {
				img.Set(x, y, bg)
			}
		}
	}
	return writePNG(path, img)
}

// writePhotoImage renders a flat-color stand-in photo.
func writePhotoImage(path string, variant int) error {
	img := image.NewRGBA(image.Rect(0, 0, 800, 600))
	fill := color.NRGBA{
		R: uint8(60 + variant*23),
		G: uint8(90 + variant*17),
		B: uint8(120 + variant*11),
		A: 0xFF,
	}
	for y := 0; y < 600; y++ {
		for x := 0; x < 800; x++ {
			img.Set(x, y, fill)
		}
	}
	return writePNG(path, img)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
