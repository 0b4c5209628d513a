package metrics

import (
	"bytes"
	"fmt"

	"github.com/prometheus/common/expfmt"
)

// TextFormat is the Prometheus text exposition format (version 0.0.4).
var TextFormat = expfmt.NewFormat(expfmt.TypeTextPlain)

// ContentType is the value for the Content-Type header of Render output.
func ContentType() string {
	return string(TextFormat)
}

// Render serializes the current registry state in the text exposition format.
// Families come out sorted by name; within a family the order follows the
// registry's gather order.
func (r *Recorder) Render() ([]byte, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, TextFormat)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return nil, fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}

	return buf.Bytes(), nil
}
