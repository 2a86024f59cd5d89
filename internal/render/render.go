package render

import (
	"github.com/piwi3910/tagcloud/internal/cloud"
	"github.com/piwi3910/tagcloud/internal/model"
)

// Save writes the cloud to path. A .pdf path produces the report; every
// other supported extension produces a raster image.
func Save(path string, c cloud.Cloud, fonts *Fonts, settings model.Settings) error {
	if IsPDF(path) {
		return ExportPDF(path, c, settings)
	}
	if _, err := EncoderFor(path); err != nil {
		return err
	}
	img, err := Raster(c, fonts, settings)
	if err != nil {
		return err
	}
	return SaveImage(path, img)
}
