//nolint:testpackage // using package name 'benchmark' to reach internal packages
package benchmark

import (
	"testing"

	mw "github.com/dzonerzy/go-optable/middleware"
	"github.com/dzonerzy/go-optable/optparse"
)

// Category: middleware

func BenchmarkMiddlewareChain(b *testing.B) {
	var o simpleOpts
	table := mw.Wrap(simpleTable(&o),
		mw.Logger(mw.WithLogLevel(mw.LogLevelNone)),
		mw.RecoveryToError(),
	)
	mw.WrapOption(table, "--port", mw.Validator(mw.Range(1, 65535)))

	p, err := optparse.NewParser(table)
	if err != nil {
		b.Fatal(err)
	}
	args := []string{"--port", "9000", "--verbose"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.ParseArgs(args, 0); err != nil {
			b.Fatal(err)
		}
	}
}
