package hostinfo

import "testing"

func TestShapeVolume(t *testing.T) {
	const gb = 1 << 30

	rec := shapeVolume(`C:\`, "NTFS", 10*gb, 5*gb)

	if rec["Drive"] != `C:\` {
		t.Errorf("Drive = %q", rec["Drive"])
	}
	if rec["FileSystem"] != "NTFS" {
		t.Errorf("FileSystem = %q", rec["FileSystem"])
	}
	if rec["FreeGB"] != "10.00" {
		t.Errorf("FreeGB = %q, want 10.00", rec["FreeGB"])
	}
	if rec["UsedGB"] != "5.00" {
		t.Errorf("UsedGB = %q, want 5.00", rec["UsedGB"])
	}
	if rec["TotalGB"] != "15.00" {
		t.Errorf("TotalGB = %q, want 15.00", rec["TotalGB"])
	}
}

func TestShapeVolume_TotalReconciles(t *testing.T) {
	// Total is the sum of the rounded parts, so the columns always add up
	// even when raw byte totals would round differently.
	var gb float64 = 1 << 30

	rec := shapeVolume("D:", "ReFS", uint64(10.006*gb), uint64(5.006*gb))

	if rec["FreeGB"] != "10.01" {
		t.Errorf("FreeGB = %q, want 10.01", rec["FreeGB"])
	}
	if rec["UsedGB"] != "5.01" {
		t.Errorf("UsedGB = %q, want 5.01", rec["UsedGB"])
	}
	if rec["TotalGB"] != "15.02" {
		t.Errorf("TotalGB = %q, want 15.02 (sum of rounded parts)", rec["TotalGB"])
	}
}

func TestShapeVolume_Zero(t *testing.T) {
	rec := shapeVolume("E:", "FAT32", 0, 0)
	if rec["TotalGB"] != "0.00" {
		t.Errorf("TotalGB = %q, want 0.00", rec["TotalGB"])
	}
}

func TestBytesToGB(t *testing.T) {
	if got := bytesToGB(1 << 30); got != 1.0 {
		t.Errorf("bytesToGB(1GiB) = %v, want 1.0", got)
	}
	if got := bytesToGB(0); got != 0 {
		t.Errorf("bytesToGB(0) = %v, want 0", got)
	}
}

func TestRoundGB(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.0}, // float64 cannot represent 1.005 exactly; it sits just below
		{1.006, 1.01},
		{2.344, 2.34},
		{0, 0},
	}

	for _, tt := range tests {
		if got := roundGB(tt.in); got != tt.want {
			t.Errorf("roundGB(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
