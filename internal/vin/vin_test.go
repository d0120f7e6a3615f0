package vin

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const vinAlphabet = "ABCDEFGHJKLMNPRSTUVWXYZ0123456789"

func TestIsVIN(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"WBAWL73549P371949", true},
		{"wbawl73549p371949", true},
		{"1HGCM82633A004352", true},
		{"WBAWL73549P37194", false},
		{"WBAWL73549P3719490", false},
		{"WBAWL73549P37194I", false},
		{"WBAWL73549P37194O", false},
		{"WBAWL73549P37194Q", false},
		{"WBAWL73549P37194-", false},
		{"", false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, IsVIN(tc.in), "in=%q", tc.in)
	}
}

func TestDecode_InvalidReturnsNil(t *testing.T) {
	for _, in := range []string{"", "ABC", "WBAWL73549P37194", "WBAWL73549P3719491", strings.Repeat("A", 40)} {
		require.Nil(t, Decode(in), "in=%q", in)
	}
}

func TestDecode_UnknownManufacturer(t *testing.T) {
	r := Decode("AAAAAAAAAAAAAAAAA")
	require.NotNil(t, r)
	require.Equal(t, Unknown, r.Make)
	require.Equal(t, Unknown, r.Model)
	require.Equal(t, "2010", r.Year)
	require.Empty(t, r.Color)
	require.Empty(t, r.ColorName)
}

func TestDecode_YearCodes(t *testing.T) {
	for code, year := range yearCodes {
		v := "ZZZ000000" + string(code) + "0000000"
		r := Decode(v)
		require.NotNil(t, r, "vin=%s", v)
		require.Equal(t, year, r.Year, "code=%c", code)
	}
	require.Equal(t, "2010", Decode("ZZZ000000A0000000").Year)
	require.Equal(t, "2022", Decode("ZZZ000000N0000000").Year)
}

func TestDecode_UnmappedYearIsUnknown(t *testing.T) {
	r := Decode("ZZZ00000000000000")
	require.NotNil(t, r)
	require.Equal(t, Unknown, r.Year)
}

func TestDecode_VerifiedBMW(t *testing.T) {
	r := Decode("WBAWL73549P371949")
	require.NotNil(t, r)
	require.Equal(t, "BMW", r.Make)
	require.Equal(t, "475", r.Color)
	require.Equal(t, "Black Sapphire Metallic", r.ColorName)
	require.False(t, r.Estimated)
	require.Equal(t, "2009 BMW 3 Series Coupe", r.Vehicle())
}

func TestDecode_VerifiedIsCaseInsensitive(t *testing.T) {
	r := Decode("wbawl73549p371949")
	require.NotNil(t, r)
	require.Equal(t, "475", r.Color)
	require.Equal(t, "WBAWL73549P371949", r.VIN)
}

func TestDecode_BMWColorTableHit(t *testing.T) {
	r := Decode("WBAPH5C50BA300123")
	require.NotNil(t, r)
	require.Equal(t, "BMW", r.Make)
	require.Equal(t, "3 Series Sedan", r.Model)
	require.Equal(t, "2011", r.Year)
	require.Equal(t, "300", r.Color)
	require.Equal(t, "Alpine White", r.ColorName)
	require.False(t, r.Estimated)
}

func TestDecode_BMWEstimatedColor(t *testing.T) {
	r := Decode("WBAWL73549P371951")
	require.NotNil(t, r)
	require.Equal(t, "3 Series Coupe", r.Model)
	require.True(t, r.Estimated)
	require.Equal(t, "475", r.Color)
	require.Contains(t, r.Paint(), "(estimated)")
}

func TestDecode_BMWNoEstimateOutsideKnownEras(t *testing.T) {
	// 2001 3 Series predates every guess window.
	r := Decode("WBAWL73541P371951")
	require.NotNil(t, r)
	require.Equal(t, "2001", r.Year)
	require.Empty(t, r.ColorName)
	require.False(t, r.Estimated)
	require.Empty(t, r.Paint())
}

func TestDecode_ModelHeuristics(t *testing.T) {
	cases := []struct {
		vin   string
		make  string
		model string
	}{
		{"1HGCM82633A004352", "Honda", "Accord"},
		{"5YJ3E1EA7KF317000", "Tesla", "Model 3"},
		{"1FTEW1E50JFA12345", "Ford", "F-150"},
		{"4T1BF1FK5CU123456", "Toyota", "Camry"},
	}
	for _, tc := range cases {
		r := Decode(tc.vin)
		require.NotNil(t, r, tc.vin)
		require.Equal(t, tc.make, r.Make, tc.vin)
		require.Equal(t, tc.model, r.Model, tc.vin)
	}
}

func TestDecode_NeverPanicsOnValidInput(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	wmis := make([]string, 0, len(manufacturers))
	for w := range manufacturers {
		wmis = append(wmis, w)
	}
	for i := 0; i < 2000; i++ {
		var b strings.Builder
		if i%2 == 0 {
			b.WriteString(wmis[rng.Intn(len(wmis))])
		}
		for b.Len() < Length {
			b.WriteByte(vinAlphabet[rng.Intn(len(vinAlphabet))])
		}
		v := b.String()
		require.True(t, IsVIN(v), v)
		r := Decode(v)
		require.NotNil(t, r, v)
		require.NotEmpty(t, r.Make, v)
		require.NotEmpty(t, r.Model, v)
		require.NotEmpty(t, r.Year, v)
	}
}

func TestFind(t *testing.T) {
	require.Equal(t, "WBAWL73549P371949", Find("my vin is wbawl73549p371949, can you check it?"))
	require.Empty(t, Find("no vin here"))
	require.Empty(t, Find("WBAWL73549P3719491234"))
}

func TestResult_VehicleAndPaint(t *testing.T) {
	var nilResult *Result
	require.Empty(t, nilResult.Vehicle())
	require.Empty(t, nilResult.Paint())

	r := &Result{Make: Unknown, Model: Unknown, Year: Unknown}
	require.Equal(t, "Unidentified vehicle", r.Vehicle())

	r = &Result{Make: "Honda", Model: Unknown, Year: "2019", Color: "731", ColorName: "Crystal Black Pearl"}
	require.Equal(t, "2019 Honda", r.Vehicle())
	require.Equal(t, "Crystal Black Pearl (code 731)", r.Paint())
}
