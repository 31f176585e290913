//nolint:testpackage // using package name 'benchmark' to reach internal packages
package benchmark

import (
	"testing"

	"github.com/dzonerzy/go-optable/argv"
	"github.com/dzonerzy/go-optable/optparse"
)

// Category: parser

type simpleOpts struct {
	port    int
	verbose bool
	host    string
	count   int
}

func simpleTable(o *simpleOpts) []optparse.Option {
	return []optparse.Option{
		optparse.Long("port", &o.port, optparse.StoreInt{Base: 10}).WithArg("PORT"),
		optparse.Long("verbose", &o.verbose, optparse.SetFlag{}),
		optparse.Long("host", &o.host, optparse.StoreString{}).WithArg("HOST"),
		optparse.Short("v", &o.count, optparse.Count{}),
		optparse.Short("p", &o.port, optparse.StoreInt{Base: 10}).WithArg("PORT"),
	}
}

func benchParse(b *testing.B, args []string, opts ...optparse.ParserOption) {
	b.Helper()
	var o simpleOpts
	p, err := optparse.NewParser(simpleTable(&o), opts...)
	if err != nil {
		b.Fatal(err)
	}
	vec := argv.New(args...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Parse(vec, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParserSimple(b *testing.B) {
	benchParse(b, []string{"--port", "8080", "--verbose"})
}

func BenchmarkParserAbbreviated(b *testing.B) {
	benchParse(b, []string{"--po", "8080", "--verb", "--ho", "localhost"}, optparse.WithMinSignificant(2))
}

func BenchmarkParserShortCluster(b *testing.B) {
	benchParse(b, []string{"-vvvv", "-p8080"})
}

func BenchmarkParserManyTokens(b *testing.B) {
	args := make([]string, 0, 64)
	for range 16 {
		args = append(args, "--port", "1", "-v", "--host", "h")
	}
	benchParse(b, args)
}

func BenchmarkParserUnknownWithSuggestion(b *testing.B) {
	var o simpleOpts
	p, err := optparse.NewParser(simpleTable(&o), optparse.WithSuggestions(2))
	if err != nil {
		b.Fatal(err)
	}
	args := []string{"--prot", "1"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.ParseArgs(args, 0); err == nil {
			b.Fatal("expected unknown option")
		}
	}
}

func BenchmarkValidate(b *testing.B) {
	var o simpleOpts
	table := simpleTable(&o)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := optparse.Validate(table); err != nil {
			b.Fatal(err)
		}
	}
}
