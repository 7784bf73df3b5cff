package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/formdsl/internal/model"
)

// writeSummary prints a short outline of the form:
//
//	form survey: 2 sections, 3 fields
//	  section "Contact"
//	    email  TextField  multiline=false
func writeSummary(w io.Writer, form *model.Form) error {
	var b strings.Builder
	fmt.Fprintf(&b, "form %s: %d sections, %d fields\n", form.Name, len(form.Sections), len(form.Fields()))
	for _, section := range form.Sections {
		fmt.Fprintf(&b, "  section %q\n", section.Name)
		for _, field := range section.Fields {
			fmt.Fprintf(&b, "    %s  %s", field.Name, field.Type.Name)
			for _, attr := range field.Type.Attributes {
				if v, ok := field.Attributes[attr.Name]; ok {
					fmt.Fprintf(&b, "  %s=%s", attr.Name, v)
				}
			}
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
