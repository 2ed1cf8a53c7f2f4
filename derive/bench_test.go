package derive

import (
	"testing"

	"github.com/viant/ownly"
)

// Benchmark compiled plan conversion against a hand written equivalent.
func BenchmarkConversion_ToOwned(b *testing.B) {
	type Entry struct {
		Name ownly.Cow
		Tags []ownly.Cow
		Id   int
	}
	conversion := MustFor[Entry]()
	buf := []byte("payload")
	entry := Entry{Name: ownly.Borrowed(buf), Tags: []ownly.Cow{ownly.Borrowed(buf[:3])}, Id: 1}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = conversion.ToOwned(&entry)
	}
}

func BenchmarkConversion_ToOwned_handWritten(b *testing.B) {
	type Entry struct {
		Name ownly.Cow
		Tags []ownly.Cow
		Id   int
	}
	buf := []byte("payload")
	entry := Entry{Name: ownly.Borrowed(buf), Tags: []ownly.Cow{ownly.Borrowed(buf[:3])}, Id: 1}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Entry{Name: entry.Name.ToOwned(), Tags: ownly.Slice[ownly.Cow](entry.Tags), Id: entry.Id}
	}
}
