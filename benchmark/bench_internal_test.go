//nolint:testpackage // using package name 'benchmark' to reach internal packages
package benchmark

import (
	"bytes"
	"testing"

	"github.com/dzonerzy/go-optable/argv"
	"github.com/dzonerzy/go-optable/internal/fuzzy"
	"github.com/dzonerzy/go-optable/internal/pool"
	optio "github.com/dzonerzy/go-optable/io"
)

// Category: fuzzy

var spellings = []string{
	"help", "version", "verbose", "config", "output", "input",
	"force", "debug", "port", "host", "timeout", "retry",
}

func BenchmarkMatcher_Rank(b *testing.B) {
	matcher := fuzzy.NewMatcher(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.Rank("hep", spellings)
	}
}

func BenchmarkFindSuggestions(b *testing.B) {
	for i := 0; i < b.N; i++ {
		fuzzy.FindSuggestions("ver", spellings, 2, 3)
	}
}

// Category: pool

func BenchmarkVectorPool_vs_Clone(b *testing.B) {
	src := argv.New("--port", "8080", "--verbose", "-vvv", "file1", "file2")

	b.Run("Pool", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			v := pool.GetVector(src)
			pool.PutVector(v)
		}
	})

	b.Run("Clone", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			v := src.Clone()
			v.Free()
		}
	})
}

func BenchmarkBufferPool_GetPut(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			buf := pool.GetBuffer(256)
			*buf = append(*buf, "option=--port phase=extract"...)
			pool.PutBuffer(buf)
		}
	})
}

// Category: io

func BenchmarkLogger_Info(b *testing.B) {
	buf := &bytes.Buffer{}
	log := optio.NewLogger(optio.New().WithOut(buf).NoColor())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.Info("parsed %d options", i)
		buf.Reset()
	}
}

func BenchmarkLogger_DisabledDebug(b *testing.B) {
	log := optio.NewLogger(optio.New().WithOut(&bytes.Buffer{}))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		log.Debug("scan: %d", i)
	}
}

func BenchmarkIO_Colorize(b *testing.B) {
	m := optio.New().ForceColor()
	for i := 0; i < b.N; i++ {
		_ = m.Colorize("hello world", optio.Red)
	}
}
