// Copyright 2023 Linkall Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ies_test

import (
	// standard libraries.
	"testing"

	// third-party libraries.
	. "github.com/smartystreets/goconvey/convey"

	// this project.
	"github.com/vanus-labs/ies2tsv/internal/ies"
	iestest "github.com/vanus-labs/ies2tsv/internal/ies/testing"
)

func TestReadColumns(t *testing.T) {
	Convey("map slots to final indexes", t, func() {
		f := iestest.NewFile("cols").
			AddString("Name").
			AddNumeric("ClassID").
			AddString("Desc").
			AddNumeric("Level")
		buf := f.Bytes()
		h, err := ies.ReadHeader(buf)
		So(err, ShouldBeNil)

		cols, err := ies.ReadColumns(buf, h)
		So(err, ShouldBeNil)
		So(cols.Len(), ShouldEqual, 4)
		So(cols.Names(), ShouldResemble, []string{"ClassID", "Level", "Name", "Desc"})

		c, ok := cols.Get(3)
		So(ok, ShouldBeTrue)
		So(c.Kind, ShouldEqual, ies.KindString)
		So(c.Slot, ShouldEqual, 1)
		So(c.Index, ShouldEqual, 3)

		_, ok = cols.Get(4)
		So(ok, ShouldBeFalse)
	})

	Convey("non-zero kinds are strings", t, func() {
		f := iestest.NewFile("kinds")
		f.Columns = []ies.Column{
			{Name: "A", Kind: ies.KindNumeric, Slot: 0},
			{Name: "B", Kind: ies.Kind(7), Slot: 0},
		}
		buf := f.Bytes()
		h, err := ies.ReadHeader(buf)
		So(err, ShouldBeNil)

		cols, err := ies.ReadColumns(buf, h)
		So(err, ShouldBeNil)
		c, _ := cols.Get(1)
		So(c.Name, ShouldEqual, "B")
		So(c.Kind, ShouldEqual, ies.KindString)
	})

	Convey("duplicate index", t, func() {
		f := iestest.NewFile("dup")
		f.Columns = []ies.Column{
			{Name: "A", Kind: ies.KindNumeric, Slot: 0},
			{Name: "B", Kind: ies.KindNumeric, Slot: 0},
		}
		buf := f.Bytes()
		h, err := ies.ReadHeader(buf)
		So(err, ShouldBeNil)

		_, err = ies.ReadColumns(buf, h)
		So(ies.IsFormatError(err), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "already holds")
	})

	Convey("duplicate index across kinds", t, func() {
		f := iestest.NewFile("dup")
		f.Columns = []ies.Column{
			{Name: "A", Kind: ies.KindNumeric, Slot: 1},
			{Name: "B", Kind: ies.KindString, Slot: 0},
		}
		buf := f.Bytes()
		h, err := ies.ReadHeader(buf)
		So(err, ShouldBeNil)

		_, err = ies.ReadColumns(buf, h)
		So(ies.IsFormatError(err), ShouldBeTrue)
	})

	Convey("index out of range", t, func() {
		f := iestest.NewFile("range")
		f.Columns = []ies.Column{
			{Name: "A", Kind: ies.KindNumeric, Slot: 0},
			{Name: "B", Kind: ies.KindString, Slot: 5},
		}
		buf := f.Bytes()
		h, err := ies.ReadHeader(buf)
		So(err, ShouldBeNil)

		_, err = ies.ReadColumns(buf, h)
		So(ies.IsFormatError(err), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "maps to index 6")
	})

	Convey("table reports unpopulated indexes", t, func() {
		tbl := ies.NewColumnTable(2)
		So(tbl.Put(ies.Column{Name: "A", Index: 1}), ShouldBeNil)
		err := tbl.Validate()
		So(ies.IsFormatError(err), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "index 0 is not populated")

		So(tbl.Put(ies.Column{Name: "B", Index: 0}), ShouldBeNil)
		So(tbl.Validate(), ShouldBeNil)
		So(tbl.Put(ies.Column{Name: "C", Index: -1}), ShouldNotBeNil)
	})

	Convey("descriptor block cut short", t, func() {
		buf := iestest.SampleFile().Bytes()
		h, err := ies.ReadHeader(buf)
		So(err, ShouldBeNil)

		_, err = ies.ReadColumns(buf[:h.ColumnsOffset()+ies.DescriptorSize+10], h)
		So(ies.IsFormatError(err), ShouldBeTrue)
		So(fieldOf(err), ShouldEqual, "column[1].name")
	})
}
