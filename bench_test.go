package ember

import (
	"fmt"
	"testing"
)

func openBenchDB(b *testing.B) *DB {
	b.Helper()
	db, err := Open("cmap", []byte(`{"size": 1048576}`))
	if err != nil {
		b.Fatalf("Open: %v", err)
	}
	b.Cleanup(func() { db.Close() })
	return db
}

func BenchmarkPut(b *testing.B) {
	db := openBenchDB(b)
	value := []byte("a reasonably sized benchmark value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		db.Put([]byte(fmt.Sprintf("key-%d", i)), value)
	}
}

func BenchmarkGet(b *testing.B) {
	db := openBenchDB(b)
	db.Put([]byte("key"), []byte("a reasonably sized benchmark value"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		db.Get([]byte("key"))
	}
}

func BenchmarkGetValue(b *testing.B) {
	db := openBenchDB(b)
	db.Put([]byte("key"), []byte("a reasonably sized benchmark value"))
	fn := func(*View) error { return nil }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		db.GetValue([]byte("key"), fn)
	}
}

func BenchmarkGetAll(b *testing.B) {
	db := openBenchDB(b)
	for i := 0; i < 1000; i++ {
		db.Put([]byte(fmt.Sprintf("key-%04d", i)), []byte("v"))
	}
	fn := func(_, _ *View) error { return nil }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		db.GetAll(fn)
	}
}
