package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// One number per line. Empty lines and lines starting with '#' are skipped.
func ReadValues(r io.Reader) ([]float64, error) {
	values := []float64{}
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("line %d: not a finite number: %v", line, s)
		}
		values = append(values, v)
	}
	return values, sc.Err()
}

func ReadValuesFile(filename string) ([]float64, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	values, err := ReadValues(f)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	return values, nil
}

//----------

// Half open range [Min,Max), except for the last bucket which includes Max.
type Bucket struct {
	Min, Max float64
	Count    int
}

func (b Bucket) String() string {
	return fmt.Sprintf("[%.4g, %.4g): %d", b.Min, b.Max, b.Count)
}

// Splits the values range into n equal buckets.
func Bucketize(values []float64, n int) []Bucket {
	if len(values) == 0 || n <= 0 {
		return nil
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}
	w := (hi - lo) / float64(n)

	bs := make([]Bucket, n)
	for i := range bs {
		bs[i].Min = lo + float64(i)*w
		bs[i].Max = lo + float64(i+1)*w
	}
	bs[n-1].Max = hi
	for _, v := range values {
		i := int((v - lo) / w)
		i = max(0, min(i, n-1))
		bs[i].Count++
	}
	return bs
}

func maxCount(bs []Bucket) int {
	m := 0
	for _, b := range bs {
		m = max(m, b.Count)
	}
	return m
}

// Deterministic sample shown when no data file is given.
func demoValues() []float64 {
	u := []float64{}
	for i := 0; i < 2000; i++ {
		// sum of sines gives a bumpy but stable distribution
		x := float64(i)
		v := 50 + 20*math.Sin(x*0.7) + 15*math.Sin(x*1.3+1) + 8*math.Sin(x*0.11)
		u = append(u, v)
	}
	return u
}
