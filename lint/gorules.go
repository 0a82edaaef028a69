// Run `golangci-lint cache clean` after modifying this file.

package gorules

import (
	"github.com/quasilyte/go-ruleguard/dsl"
)

func callToTimeNow(m dsl.Matcher) {
	m.Match(`time.Now()`).
		Where(
			!m.File().PkgPath.Matches(`datefinder/clock`) &&
				!m.File().PkgPath.Matches(`datefinder/middleware`)).
		Report(`calls to time.Now() are only allowed in clock and middleware, take a clock.Clock instead`)
	m.Match(`clock.System`).
		Where(
			m.File().PkgPath.Matches(`datefinder/dateparse`)).
		Report(`dateparse takes the current time as an argument, don't reach for clock.System`)
}

func stdlibRegexp(m dsl.Matcher) {
	m.Match(`regexp.MustCompile($_)`, `regexp.Compile($_)`).
		Where(m.File().PkgPath.Matches(`datefinder/(dateparse|finder)`)).
		Report(`use regexp2 so that patterns get a match timeout`)
}
