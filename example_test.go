package bytescan_test

import (
	"fmt"

	"github.com/coregx/bytescan"
)

func ExampleMemchr() {
	haystack := []byte("hello world")

	fmt.Println(bytescan.Memchr(haystack, 'o'))
	fmt.Println(bytescan.Memchr(haystack, 'x'))
	// Output:
	// 4
	// -1
}

func ExampleMemchr3() {
	csv := []byte("name,age;city")

	fmt.Println(bytescan.Memchr3(csv, ',', ';', '|'))
	// Output:
	// 4
}

func ExampleMemrchr() {
	path := []byte("/usr/local/bin/go")

	fmt.Println(bytescan.Memrchr(path, '/'))
	// Output:
	// 14
}

func ExampleCount() {
	line := []byte("a,b,,c,")

	fmt.Println(bytescan.Count(line, ','))
	// Output:
	// 4
}

func ExampleMemmem() {
	haystack := []byte("hello world")

	fmt.Println(bytescan.Memmem(haystack, []byte("world")))
	fmt.Println(bytescan.Memmem(haystack, []byte("xyz")))
	// Output:
	// 6
	// -1
}

func ExamplePatternSet() {
	set, err := bytescan.NewPatternSet([][]byte{
		[]byte("ERROR"),
		[]byte("WARN"),
		[]byte("FATAL"),
		[]byte("PANIC"),
	})
	if err != nil {
		panic(err)
	}

	log := []byte("2024-01-01 WARN disk nearly full")
	start, end, ok := set.Find(log, 0)
	if ok {
		fmt.Printf("%s at %d\n", log[start:end], start)
	}
	// Output:
	// WARN at 11
}
