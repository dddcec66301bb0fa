package internal

import (
	"strings"
	"testing"
)

func TestProgress_Ratio(t *testing.T) {
	tests := []struct {
		name     string
		progress Progress
		want     float64
	}{
		{"empty set", Progress{Done: 0, Total: 0}, 0},
		{"nothing done", Progress{Done: 0, Total: 10}, 0},
		{"partially done", Progress{Done: 3, Total: 10}, 0.3},
		{"all done", Progress{Done: 10, Total: 10}, 1},
		{"overcounted clamps to one", Progress{Done: 12, Total: 10}, 1},
		{"negative total", Progress{Done: 1, Total: -1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.progress.Ratio(); got != tt.want {
				t.Errorf("Ratio() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgress_Render(t *testing.T) {
	got := Progress{Done: 3, Total: 10}.Render(30)

	if !strings.Contains(got, "3/10") {
		t.Errorf("Render() = %q, want counts included", got)
	}
	if !strings.Contains(got, "(30%)") {
		t.Errorf("Render() = %q, want percentage included", got)
	}
	if !strings.Contains(got, "█") || !strings.Contains(got, "░") {
		t.Errorf("Render() = %q, want bar characters", got)
	}
}

func TestProgress_RenderComplete(t *testing.T) {
	got := Progress{Done: 5, Total: 5}.Render(10)

	if strings.Contains(got, "░") {
		t.Errorf("Render() = %q, want no unfilled cells at completion", got)
	}
	if !strings.Contains(got, "(100%)") {
		t.Errorf("Render() = %q, want 100 percent", got)
	}
}

func TestProgress_RenderMinWidth(t *testing.T) {
	got := Progress{Done: 0, Total: 1}.Render(0)

	if !strings.Contains(got, "0/1") {
		t.Errorf("Render() = %q, want counts even at zero width", got)
	}
}
