package attachment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty string", raw: "", want: []string{}},
		{name: "whitespace only", raw: "   ", want: []string{}},
		{name: "single url", raw: "https://files.example/exam_1.pdf", want: []string{"https://files.example/exam_1.pdf"}},
		{
			name: "trims and drops empty entries",
			raw:  "exam_1.pdf, exam_2.png, ,exam_3.dcm",
			want: []string{"exam_1.pdf", "exam_2.png", "exam_3.dcm"},
		},
		{
			name: "order preserved and duplicates kept",
			raw:  "b.jpg,a.pdf,b.jpg",
			want: []string{"b.jpg", "a.pdf", "b.jpg"},
		},
		{name: "trailing comma", raw: "a.pdf,", want: []string{"a.pdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Parse(tt.raw)
			got := make([]string, len(set))
			for i, ref := range set {
				got[i] = ref.URL
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_JoinRoundTrip(t *testing.T) {
	// Parse is idempotent over its own serialization.
	for _, raw := range []string{
		"exam_1.pdf, exam_2.png, ,exam_3.dcm",
		" a.txt ,b.doc",
		"",
	} {
		set := Parse(raw)
		assert.Equal(t, set, Parse(Join(set)), "raw=%q", raw)
	}
}

func TestRef_Derived(t *testing.T) {
	tests := []struct {
		url      string
		fileName string
		ext      string
	}{
		{url: "https://files.example/uploads/scan.DCM", fileName: "scan.DCM", ext: "dcm"},
		{url: "report.pdf", fileName: "report.pdf", ext: "pdf"},
		{url: "https://files.example/noext", fileName: "noext", ext: ""},
		{url: "https://files.example/trailingdot.", fileName: "trailingdot.", ext: ""},
	}
	for _, tt := range tests {
		ref := Ref{URL: tt.url}
		assert.Equal(t, tt.fileName, ref.FileName(), tt.url)
		assert.Equal(t, tt.ext, ref.Extension(), tt.url)
	}
}

func TestSummarize(t *testing.T) {
	t.Run("empty set yields all-zero counts", func(t *testing.T) {
		counts := Summarize(Parse(""))
		assert.Len(t, counts, len(Categories))
		for _, c := range Categories {
			assert.Zero(t, counts[c])
		}
		assert.Zero(t, counts.Total())
	})

	t.Run("mixed set", func(t *testing.T) {
		counts := Summarize(Parse("a.pdf, b.jpg"))
		assert.Equal(t, 1, counts[CategoryPDF])
		assert.Equal(t, 1, counts[CategoryImage])
		assert.Equal(t, 0, counts[CategoryOther])
		assert.Equal(t, 2, counts.Total())
	})

	t.Run("sum equals set size", func(t *testing.T) {
		set := Parse("exam_1.pdf, exam_2.png, ,exam_3.dcm")
		assert.Len(t, set, 3)
		counts := Summarize(set)
		assert.Equal(t, 1, counts[CategoryPDF])
		assert.Equal(t, 1, counts[CategoryImage])
		assert.Equal(t, 1, counts[CategoryMedicalImaging])
		assert.Equal(t, 0, counts[CategoryOther])
		assert.Equal(t, len(set), counts.Total())
	})
}

func TestPlanPreview(t *testing.T) {
	tests := []struct {
		name string
		url  string
		kind PlanKind
	}{
		{name: "image inline", url: "https://files.example/xray.PNG", kind: PlanImage},
		{name: "pdf embedded", url: "https://files.example/report.pdf", kind: PlanEmbeddedDocument},
		{name: "text fetched", url: "https://files.example/notes.txt", kind: PlanFetchedText},
		{name: "dicom unsupported by policy", url: "https://files.example/scan.dcm", kind: PlanUnsupported},
		{name: "word unsupported by policy", url: "https://files.example/summary.docx", kind: PlanUnsupported},
		{name: "unknown extension unsupported", url: "https://files.example/tool.exe", kind: PlanUnsupported},
		{name: "no extension unsupported", url: "https://files.example/blob", kind: PlanUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanPreview(Ref{URL: tt.url})
			assert.Equal(t, tt.kind, plan.Kind)
			assert.NotEmpty(t, plan.FileName)
			if tt.kind == PlanUnsupported {
				// Unsupported plans carry only name and extension.
				assert.Empty(t, plan.URL)
			} else {
				assert.Equal(t, tt.url, plan.URL)
			}
		})
	}
}
