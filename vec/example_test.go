// SPDX-License-Identifier: MIT

package vec_test

import (
	"fmt"

	"github.com/katalvlaran/indexvec/idx"
	"github.com/katalvlaran/indexvec/vec"
)

type (
	cityDom struct{ idx.DefaultDomain }
	roadDom struct{ idx.DefaultDomain }

	CityIdx = idx.Of[uint32, cityDom]
	RoadIdx = idx.Of[uint32, roadDom]
)

type road struct {
	From, To CityIdx
	Km       int
}

// ExampleVec shows two vectors whose indices cannot be mixed up.
func ExampleVec() {
	cities := vec.New[CityIdx, string]()
	roads := vec.New[RoadIdx, road]()

	kyiv := cities.Push("Kyiv")
	lviv := cities.Push("Lviv")
	r := roads.Push(road{From: kyiv, To: lviv, Km: 540})

	// cities.At(r) would not compile: r is a RoadIdx.
	e := roads.At(r)
	fmt.Printf("%s -> %s: %d km\n", cities.At(e.From), cities.At(e.To), e.Km)
	// Output:
	// Kyiv -> Lviv: 540 km
}

// ExampleSlice_Enumerate iterates with typed indices.
func ExampleSlice_Enumerate() {
	cities := vec.From[CityIdx]("Odesa", "Kharkiv")
	for i, name := range cities.Enumerate() {
		fmt.Println(i, name)
	}
	// Output:
	// 0 Odesa
	// 1 Kharkiv
}

// ExampleVec_DrainEnumerated removes a run and reports where each element was.
func ExampleVec_DrainEnumerated() {
	v := vec.From[CityIdx]("a", "b", "c", "d")
	for i, s := range v.DrainEnumerated(vec.Range(idx.New[CityIdx](1), idx.New[CityIdx](3))) {
		fmt.Println(i, s)
	}
	fmt.Println(v)
	// Output:
	// 1 b
	// 2 c
	// [a d]
}

// ExampleSlice_Sub takes a typed sub-view.
func ExampleSlice_Sub() {
	v := vec.From[CityIdx](10, 20, 30, 40)
	fmt.Println(v.Sub(vec.RangeInclusive(idx.New[CityIdx](1), idx.New[CityIdx](2))))
	_, ok := v.GetSub(vec.RangeFrom(idx.New[CityIdx](5)))
	fmt.Println(ok)
	// Output:
	// [20 30]
	// false
}
