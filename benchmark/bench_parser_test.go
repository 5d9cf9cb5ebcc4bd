package benchmark

import (
	"testing"

	"github.com/dzonerzy/go-argspec/argspec"
	argio "github.com/dzonerzy/go-argspec/io"
)

// Category: parser
//
// A context is single-submit, so every iteration pays for declaration and
// parsing together, the same shape a short-lived CLI process has.

func discardSink() *argio.Sink {
	sink, _, _ := argio.Capture()
	return sink
}

func BenchmarkSubmitSimple(b *testing.B) {
	args := []string{"bench", "--port", "8080", "--verbose"}
	sink := discardSink()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := argspec.New(args, argspec.WithSink(sink))
		c.MustDeclare("port", argspec.Int)
		c.MustDeclare("verbose", argspec.Switch)
		if err := c.Submit(); err != nil {
			b.Fatal(err)
		}
		if v, ok := c.TryBool("verbose"); !ok || !v {
			b.Fatal("verbose not parsed")
		}
	}
}

func BenchmarkSubmitAssignForms(b *testing.B) {
	args := []string{"bench", "--port=8080", "--ratio=3.14", "--config=/path/to/config.json"}
	sink := discardSink()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := argspec.New(args, argspec.WithSink(sink))
		c.MustDeclare("port", argspec.Int)
		c.MustDeclare("ratio", argspec.Double)
		c.MustDeclare("config", argspec.String)
		if err := c.Submit(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSubmitManyParameters(b *testing.B) {
	args := []string{
		"bench",
		"--flag1", "test1",
		"--flag2", "test2",
		"--flag3", "test3",
		"--port", "9000",
		"--verbose",
		"--debug",
	}
	sink := discardSink()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := argspec.New(args, argspec.WithSink(sink))
		c.MustDeclare("flag1", argspec.String)
		c.MustDeclare("flag2", argspec.String)
		c.MustDeclare("flag3", argspec.String)
		c.MustDeclare("flag4", argspec.String)
		c.MustDeclare("flag5", argspec.String)
		c.MustDeclare("port", argspec.Int)
		c.MustDeclare("verbose", argspec.Switch)
		c.MustDeclare("debug", argspec.Switch)
		c.MustDeclare("quiet", argspec.Switch)
		c.MustDeclare("force", argspec.Switch)
		if err := c.Submit(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSubmitArrays(b *testing.B) {
	args := []string{
		"bench",
		"--tags", "cli", "parser", "go",
		"--ports", "80", "443", "8080",
		"--verbose",
	}
	sink := discardSink()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := argspec.New(args, argspec.WithSink(sink))
		c.MustDeclare("tags", argspec.StringArray)
		c.MustDeclare("ports", argspec.IntArray)
		c.MustDeclare("verbose", argspec.Switch)
		if err := c.Submit(); err != nil {
			b.Fatal(err)
		}
		if tags, ok := c.TryStringArray("tags"); !ok || len(tags) != 3 {
			b.Fatal("tags not accumulated")
		}
	}
}

func BenchmarkSubmitComprehensiveTypes(b *testing.B) {
	args := []string{
		"bench",
		"--name", "go-argspec",
		"--port", "0xFF",
		"--verbose",
		"--ratio", "3.14",
		"--flag", "TRUE",
	}
	sink := discardSink()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := argspec.New(args, argspec.WithSink(sink))
		c.MustDeclare("name", argspec.String)
		c.MustDeclare("port", argspec.Int)
		c.MustDeclare("verbose", argspec.Switch)
		c.MustDeclare("ratio", argspec.Double)
		c.MustDeclare("flag", argspec.Bool)
		if err := c.Submit(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSubmitUnknownArgument(b *testing.B) {
	args := []string{"bench", "--prot", "8080"}
	sink := discardSink()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := argspec.New(args, argspec.WithSink(sink))
		c.MustDeclare("port", argspec.Int)
		c.MustDeclare("verbose", argspec.Switch)
		if err := c.Submit(); err == nil {
			b.Fatal("expected error")
		}
	}
}

func BenchmarkSubmitGroupValidation(b *testing.B) {
	args := []string{"bench", "--json", "--config", "test.conf"}
	sink := discardSink()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := argspec.New(args, argspec.WithSink(sink))
		c.MustDeclare("json", argspec.Switch)
		c.MustDeclare("yaml", argspec.Switch)
		c.MustDeclare("config", argspec.String)
		if err := c.MutuallyExclusive("json", "yaml"); err != nil {
			b.Fatal(err)
		}
		if err := c.Submit(); err != nil {
			b.Fatal(err)
		}
	}
}
