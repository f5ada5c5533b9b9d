package grating

import (
	"errors"
	"math"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantParam string
	}{
		{"valid", func(c *Config) {}, ""},
		{"negative grooves", func(c *Config) { c.GrooveDensity = -300 }, "groove density"},
		{"zero grooves", func(c *Config) { c.GrooveDensity = 0 }, "groove density"},
		{"zero focal length", func(c *Config) { c.FocalLengthMm = 0 }, "focal length"},
		{"negative pixel size", func(c *Config) { c.PixelSizeUm = -1 }, "pixel size"},
		{"zero center", func(c *Config) { c.CenterWavelengthNm = 0 }, "center wavelength"},
		{"zero order", func(c *Config) { c.Order = 0 }, "diffraction order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantParam == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}

			var cerr *ConfigurationError
			if !errors.As(err, &cerr) {
				t.Fatalf("Validate() = %v, want ConfigurationError", err)
			}
			if cerr.Param != tt.wantParam {
				t.Errorf("ConfigurationError.Param = %q, want %q", cerr.Param, tt.wantParam)
			}
		})
	}
}

func TestCenterPixelReturnsCenterWavelength(t *testing.T) {
	cfg := DefaultConfig()

	wl, err := cfg.Wavelength(0)
	if err != nil {
		t.Fatal(err)
	}

	if wl != cfg.CenterWavelengthNm {
		t.Errorf("Wavelength(0) = %g, want exactly %g", wl, cfg.CenterWavelengthNm)
	}
}

func TestCenterPixelExactInNegativeOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Order = -1

	wl, err := cfg.Wavelength(0)
	if err != nil {
		t.Fatal(err)
	}
	if wl != cfg.CenterWavelengthNm {
		t.Errorf("Wavelength(0) = %g, want exactly %g", wl, cfg.CenterWavelengthNm)
	}
}

func TestWavelengthKnownValue(t *testing.T) {
	cfg := DefaultConfig()

	wl, err := cfg.Wavelength(100)
	if err != nil {
		t.Fatal(err)
	}

	// 300 gr/mm, 10° incidence, 300 mm focal length, 26 µm pitch, first
	// order, 600 nm at the midpoint.
	want := 628.8864261480187
	if math.Abs(wl-want) > 1e-9 {
		t.Errorf("Wavelength(100) = %.12f, want %.12f", wl, want)
	}
}

func TestWavelengthIncreasesWithPixel(t *testing.T) {
	cfg := DefaultConfig()

	prev := math.Inf(-1)
	for p := -512.0; p <= 512; p += 64 {
		wl, err := cfg.Wavelength(p)
		if err != nil {
			t.Fatal(err)
		}
		if wl <= prev {
			t.Fatalf("wavelength not increasing at pixel %g: %g <= %g", p, wl, prev)
		}
		prev = wl
	}
}

func TestWavelengthAxisMatchesScalar(t *testing.T) {
	cfg := DefaultConfig()

	pixels := make([]float64, 1024)
	for i := range pixels {
		pixels[i] = float64(i) - 511.5
	}

	axis, err := cfg.WavelengthAxis(pixels)
	if err != nil {
		t.Fatal(err)
	}
	if len(axis) != len(pixels) {
		t.Fatalf("axis length = %d, want %d", len(axis), len(pixels))
	}

	for i, p := range pixels {
		want, err := cfg.Wavelength(p)
		if err != nil {
			t.Fatal(err)
		}
		if axis[i] != want {
			t.Errorf("axis[%d] = %g, scalar = %g", i, axis[i], want)
		}
	}
}

func TestWavelengthAxisN(t *testing.T) {
	cfg := DefaultConfig()

	axis, err := cfg.WavelengthAxisN(1025)
	if err != nil {
		t.Fatal(err)
	}

	// Odd pixel count puts the midpoint on a pixel.
	if axis[512] != cfg.CenterWavelengthNm {
		t.Errorf("midpoint = %g, want exactly %g", axis[512], cfg.CenterWavelengthNm)
	}

	if _, err := cfg.WavelengthAxisN(0); err == nil {
		t.Error("WavelengthAxisN(0) should fail")
	}
}

func TestDomainErrorYieldsNaNInBatch(t *testing.T) {
	// A steep geometry: β_c ≈ 54.7°, so pixels beyond ~1362 push the
	// diffraction angle past 90°.
	cfg := Config{
		GrooveDensity:      1800,
		IncidenceAngleDeg:  10,
		FocalLengthMm:      50,
		PixelSizeUm:        26,
		CenterWavelengthNm: 550,
		Order:              1,
	}

	axis, err := cfg.WavelengthAxis([]float64{0, 1300, 1400, 3000})
	if err != nil {
		t.Fatal(err)
	}

	if axis[0] != 550 {
		t.Errorf("axis[0] = %g, want 550", axis[0])
	}
	if math.Abs(axis[1]-651.9008154671317) > 1e-9 {
		t.Errorf("axis[1] = %.12f", axis[1])
	}
	if !math.IsNaN(axis[2]) || !math.IsNaN(axis[3]) {
		t.Errorf("out-of-range pixels must yield NaN, got %v", axis)
	}

	// The scalar call reports the same condition as a typed error.
	_, err = cfg.Wavelength(1400)

	var derr *DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("Wavelength(1400) error = %v, want DomainError", err)
	}
	if derr.Pixel != 1400 {
		t.Errorf("DomainError.Pixel = %g, want 1400", derr.Pixel)
	}
}

func TestCenterCalibrationDomainError(t *testing.T) {
	// 1200 nm in first order on an 1800 gr/mm grating needs sin β > 1.
	cfg := Config{
		GrooveDensity:      1800,
		IncidenceAngleDeg:  10,
		FocalLengthMm:      50,
		PixelSizeUm:        26,
		CenterWavelengthNm: 1200,
		Order:              1,
	}

	var derr *DomainError
	if _, err := cfg.Wavelength(0); !errors.As(err, &derr) {
		t.Fatalf("Wavelength(0) error = %v, want DomainError", err)
	}
	if derr.SinBeta <= 1 {
		t.Errorf("DomainError.SinBeta = %g, want > 1", derr.SinBeta)
	}

	if _, err := cfg.WavelengthAxis([]float64{0, 1}); !errors.As(err, &derr) {
		t.Errorf("WavelengthAxis error = %v, want DomainError", err)
	}
}

func TestDispersion(t *testing.T) {
	cfg := DefaultConfig()

	disp, err := cfg.Dispersion()
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(disp-11.1109) > 1e-3 {
		t.Errorf("Dispersion() = %.4f nm/mm, want ~11.1109", disp)
	}

	cfg.GrooveDensity = 0
	if _, err := cfg.Dispersion(); err == nil {
		t.Error("Dispersion with invalid config should fail")
	}
}
