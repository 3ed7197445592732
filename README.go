/*

Package when -> timezone-aware instants without format directives

A When is an immutable point on the timeline paired with a mutable timezone
view.  The instant never changes after construction; the view only decides how
the instant reads.  Two When values that name the same physical moment are
equal and hash identically no matter which timezone they are viewed through.

	earthDay, _ := when.New(2015, 4, 22, 5, 0, 0, 0, "America/New_York")
	earthDay.String() // 2015-04-22 05:00:00-04:00
	earthDay.SetTimezone("America/Los_Angeles")
	earthDay.String() // 2015-04-22 02:00:00-07:00

Formatting is driven by a reference date instead of directive mnemonics.  The
reference is the American Declaration of Independence at 1:02:03.012345PM in
Philadelphia, and a specifier is simply that instant written the way you want
yours written:

	earthDay.Format("1776-07-04T13:02:03.012345-04:00")
	earthDay.Format("2 minutes past 1pm")

FromString inverts the same idea for parsing, and FromISOFormat covers the
common ISO-8601 shapes.

While is the duration counterpart of When, and Timer measures the While
between two readings of a Clock.  The storages package files When values away,
either in a local bolt database or in process memory, without losing the
timezone view they were saved with.

*/
package when
