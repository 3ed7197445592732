package when_test

import (
	"fmt"

	"github.com/brianjpetersen/when"
)

func ExampleNew() {
	earthDay, _ := when.New(2015, 4, 22, 5, 0, 0, 0, "America/New_York")
	fmt.Println(earthDay)
	// Output: 2015-04-22 05:00:00-04:00
}

func ExampleWhen_SetTimezone() {
	earthDay, _ := when.New(2015, 4, 22, 5, 0, 0, 0, "America/New_York")
	fmt.Println(earthDay)
	_ = earthDay.SetTimezone("America/Los_Angeles")
	fmt.Println(earthDay)
	// Output:
	// 2015-04-22 05:00:00-04:00
	// 2015-04-22 02:00:00-07:00
}

func ExampleWhen_Format() {
	earthDay, _ := when.New(2015, 4, 22, 5, 30, 59, 23, "America/Los_Angeles")
	fmt.Println(earthDay.Format("1776-07-04T13:02:03.012345-04:00"))
	fmt.Println(earthDay.Format("76/07/04"))
	fmt.Println(earthDay.Format("2 minutes past 1pm"))
	// Output:
	// 2015-04-22T05:30:59.000023-07:00
	// 15/04/22
	// 30 minutes past 5am
}

func ExampleWhen_Inflection() {
	earthDay, _ := when.NewDate(2015, 4, 22, "America/New_York")
	fmt.Printf("the %d%s day of the month\n", earthDay.Day(), earthDay.Inflection())
	// Output: the 22nd day of the month
}

func ExampleWhen_ISOFormat() {
	earthDay, _ := when.NewDate(2015, 4, 22, "utc")
	fmt.Println(earthDay.ISOFormat())
	// Output: 2015-04-22T00:00:00.000+00:00
}

func ExampleFromString() {
	w, _ := when.FromString("2015-03-03 02:58:59", "1776-07-04 01:02:03", when.InTimezone("utc"))
	fmt.Println(w)
	// Output: 2015-03-03 02:58:59+00:00
}

func ExampleFromISOFormat() {
	w, _ := when.FromISOFormat("2015-03-03T02:00:59.123422Z")
	fmt.Println(w)
	// Output: 2015-03-03 02:00:59.123422+00:00
}

func ExampleWhen_Sub() {
	start, _ := when.New(2015, 4, 22, 5, 0, 0, 0, "America/New_York")
	stop, _ := when.New(2015, 4, 22, 2, 30, 0, 0, "America/Los_Angeles")
	fmt.Println(stop.Sub(start).Minutes())
	// Output: 30
}
