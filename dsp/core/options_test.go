package core

import "testing"

func TestDefaultProcessorConfig(t *testing.T) {
	cfg := DefaultProcessorConfig()
	if cfg.SampleRate != 44100 {
		t.Fatalf("SampleRate = %v, want 44100", cfg.SampleRate)
	}
	if cfg.BlockSize != 128 {
		t.Fatalf("BlockSize = %d, want 128", cfg.BlockSize)
	}
}

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(96000), WithBlockSize(256))
	if cfg.SampleRate != 96000 {
		t.Fatalf("SampleRate = %v, want 96000", cfg.SampleRate)
	}
	if cfg.BlockSize != 256 {
		t.Fatalf("BlockSize = %d, want 256", cfg.BlockSize)
	}
}

func TestOptionsIgnoreInvalidValues(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(-1), WithBlockSize(0), nil)
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, def)
	}
}
