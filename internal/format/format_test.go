package format

import (
	"strings"
	"testing"
	"time"
)

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "< 1µs"},
		{500 * time.Nanosecond, "< 1µs"},
		{750 * time.Microsecond, "750µs"},
		{42 * time.Millisecond, "42ms"},
		{1500 * time.Millisecond, "1.5s"},
		{90*time.Second + 1234*time.Microsecond, "1m30.001s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.d); got != tt.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		b    uint64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 << 20, "5.0 MiB"},
		{3 << 30, "3.0 GiB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.b); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.b, got, tt.want)
		}
	}
}

// TestProgressState covers averaging over strategies, clamping and
// out-of-range indices.
func TestProgressState(t *testing.T) {
	t.Parallel()

	ps := NewProgressState(2)
	ps.Update(0, 0.5)
	ps.Update(1, 1.5)
	ps.Update(2, 1)
	ps.Update(-1, 1)
	if got := ps.CalculateAverage(); got != 0.75 {
		t.Errorf("CalculateAverage() = %v, want 0.75", got)
	}

	ps.Update(0, -3)
	if got := ps.CalculateAverage(); got != 0.5 {
		t.Errorf("after negative update CalculateAverage() = %v, want 0.5", got)
	}

	if got := NewProgressState(-1).CalculateAverage(); got != 0 {
		t.Errorf("empty state average = %v, want 0", got)
	}
}

func TestProgressWithETA(t *testing.T) {
	t.Parallel()

	p := NewProgressWithETA(2)
	if eta := p.GetETA(); eta != 0 {
		t.Errorf("ETA before any rate = %v, want 0", eta)
	}

	avg, _ := p.UpdateWithETA(0, 0.25)
	if avg != 0.125 {
		t.Errorf("average = %v, want 0.125", avg)
	}

	// Half done at 10%/s leaves about five seconds.
	p.Update(1, 0.75)
	p.progressRate = 0.1
	if eta := p.GetETA(); eta < 4*time.Second || eta > 6*time.Second {
		t.Errorf("GetETA() = %v, want about 5s", eta)
	}

	p.progressRate = 1e-9
	if eta := p.GetETA(); eta != maxETA {
		t.Errorf("slow rate GetETA() = %v, want cap %v", eta, maxETA)
	}

	p.Update(0, 1)
	p.Update(1, 1)
	if eta := p.GetETA(); eta != 0 {
		t.Errorf("finished GetETA() = %v, want 0", eta)
	}
}

func TestFormatETA(t *testing.T) {
	t.Parallel()
	tests := []struct {
		eta  time.Duration
		want string
	}{
		{-time.Second, "calculating..."},
		{0, "calculating..."},
		{300 * time.Millisecond, "< 1s"},
		{45 * time.Second, "45s"},
		{2 * time.Minute, "2m"},
		{2*time.Minute + 30*time.Second, "2m30s"},
		{3 * time.Hour, "3h"},
		{time.Hour + 15*time.Minute, "1h15m"},
	}
	for _, tt := range tests {
		if got := FormatETA(tt.eta); got != tt.want {
			t.Errorf("FormatETA(%v) = %q, want %q", tt.eta, got, tt.want)
		}
	}
}

func TestFormatProgressBarWithETA(t *testing.T) {
	t.Parallel()

	if got, want := ProgressBar(0.5, 4), "██░░"; got != want {
		t.Errorf("ProgressBar(0.5, 4) = %q, want %q", got, want)
	}
	if got, want := ProgressBar(7, 3), "███"; got != want {
		t.Errorf("ProgressBar(7, 3) = %q, want %q", got, want)
	}

	got := FormatProgressBarWithETA(0.75, 30*time.Second, 4)
	if !strings.HasPrefix(got, "[███░]  75.00%") || !strings.HasSuffix(got, "ETA: 30s") {
		t.Errorf("FormatProgressBarWithETA() = %q", got)
	}
}
