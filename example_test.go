package bitarray_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/bitarray"
)

func Example() {
	b, err := bitarray.FromBitString("101101")
	if err != nil {
		log.Fatal(err)
	}

	b.RotateLeft(1)
	fmt.Println(b)
	fmt.Println(b.HexString())
	// Output:
	// 011011
	// 6C
}

func ExampleBitArray_PermuteByNumber() {
	src := bitarray.Must(bitarray.FromBitString("010011"))

	out, err := src.PermuteByNumber([]int{2, 5, 6, 1, 3, 4})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(out)
	// Output: 111000
}

func ExampleBitArray_Xor() {
	a := bitarray.Must(bitarray.FromHexString("F0"))
	b := bitarray.Must(bitarray.FromHexString("3C"))

	x, err := a.Xor(b)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(x.HexString())
	// Output: CC
}

func ExampleBitArray_Set() {
	b := bitarray.Must(bitarray.New(6))

	if err := b.Set(99, 1); errors.Is(err, bitarray.ErrContractViolation) {
		fmt.Println(err)
	}
	fmt.Println(b)
	// Output:
	// index (99) must be between 0 and 5.
	// 000000
}

func ExampleBitArray_IterateBlocks() {
	b := bitarray.Must(bitarray.FromBitString("0100110"))

	blocks, err := b.IterateBlocks(3)
	if err != nil {
		log.Fatal(err)
	}

	for block := range blocks.Seq() {
		fmt.Println(block)
	}
	// Output:
	// 010
	// 011
	// 0
}

func ExampleBitArray_ShiftRangeLeft() {
	b := bitarray.Must(bitarray.FromBitString("10110110"))

	if _, err := b.ShiftRangeLeft(1, 5, 2); err != nil {
		log.Fatal(err)
	}

	fmt.Println(b)
	// Output: 11010010
}
