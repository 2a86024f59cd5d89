package importer

import (
	"fmt"
	"strings"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// ReadDXF returns the value of every TEXT entity in a DXF drawing, one per
// line. Geometry entities are ignored.
func ReadDXF(path string) (string, error) {
	drawing, err := dxf.Open(path)
	if err != nil {
		return "", fmt.Errorf("cannot open DXF file: %w", err)
	}

	var b strings.Builder
	for _, ent := range drawing.Entities() {
		if t, ok := ent.(*entity.Text); ok {
			b.WriteString(dxfUnescape(t.Value))
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

// dxfUnescape replaces the %%-codes DXF uses for a few special characters.
func dxfUnescape(s string) string {
	r := strings.NewReplacer("%%d", "°", "%%D", "°", "%%p", "±", "%%P", "±", "%%c", "ø", "%%C", "ø", "%%%", "%")
	return r.Replace(s)
}
