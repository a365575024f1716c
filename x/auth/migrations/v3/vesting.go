package v3

import (
	"strconv"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/terra-project/columbus-migrate/types"
)

const (
	// FlaggedAccount is the only account whose vesting schedules are rebuilt.
	FlaggedAccount = "terra1fs7mmpducjf25j70sk3sz6k5phz2fllmyr5gwz"

	// VestingReference is the columbus-1 genesis time month offsets are counted from.
	VestingReference = "2019-04-24T06:00:00.000000Z"

	// ratioPrecision is the number of decimal digits kept in the equal usdr shares.
	ratioPrecision = 3

	// usdrTranches is the number of monthly usdr tranches, the last one
	// taking the truncation remainder.
	usdrTranches = 18

	// firstTrancheOffset is the month offset of the first usdr tranche.
	firstTrancheOffset = 4
)

var vestingReferenceTime = mustParseTime(VestingReference)

// lunaTranches lists the uluna release windows as month offsets from the
// reference date.
var lunaTranches = []struct {
	start, end int
	ratio      sdkmath.LegacyDec
}{
	{4, 5, sdkmath.LegacyNewDecWithPrec(1, 1)},
	{5, 6, sdkmath.LegacyNewDecWithPrec(1, 1)},
	{6, 7, sdkmath.LegacyNewDecWithPrec(1, 1)},
	{14, 15, sdkmath.LegacyNewDecWithPrec(7, 1)},
}

func mustParseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeAfterNMonths returns the unix time n calendar months after start. The
// month is carried into the year, day of month and time of day are kept.
func TimeAfterNMonths(start time.Time, n int) int64 {
	year := start.Year()
	month := int(start.Month()) + n
	for month > 12 {
		year++
		month -= 12
	}

	return time.Date(
		year, time.Month(month), start.Day(),
		start.Hour(), start.Minute(), start.Second(), start.Nanosecond(),
		start.Location(),
	).Unix()
}

// truncateRatio drops every decimal digit of r past ratioPrecision.
func truncateRatio(r sdkmath.LegacyDec) sdkmath.LegacyDec {
	scale := sdkmath.NewIntWithDecimal(1, ratioPrecision)
	return sdkmath.LegacyNewDecFromInt(r.MulInt(scale).TruncateInt()).QuoInt(scale)
}

func monthlySchedule(startOffset, endOffset int, ratio sdkmath.LegacyDec) types.Schedule {
	return types.Schedule{
		StartTime: strconv.FormatInt(TimeAfterNMonths(vestingReferenceTime, startOffset), 10),
		EndTime:   strconv.FormatInt(TimeAfterNMonths(vestingReferenceTime, endOffset), 10),
		Ratio:     ratio,
	}
}

// LunaVestingSchedule releases uluna in four tranches of 10%, 10%, 10% and 70%.
func LunaVestingSchedule() types.VestingSchedule {
	schedules := make([]types.Schedule, 0, len(lunaTranches))
	for _, tr := range lunaTranches {
		schedules = append(schedules, monthlySchedule(tr.start, tr.end, tr.ratio))
	}
	return types.VestingSchedule{Denom: types.BondDenom, Schedules: schedules}
}

// TerraVestingSchedule releases usdr over eighteen consecutive months. The
// first seventeen shares are 1/18 truncated to three digits and the final
// share takes whatever is left so the ratios add up to exactly one.
func TerraVestingSchedule() types.VestingSchedule {
	share := truncateRatio(sdkmath.LegacyOneDec().QuoInt64(usdrTranches))
	cumulated := sdkmath.LegacyZeroDec()

	schedules := make([]types.Schedule, 0, usdrTranches)
	for i := 0; i < usdrTranches-1; i++ {
		cumulated = cumulated.Add(share)
		schedules = append(schedules, monthlySchedule(firstTrancheOffset+i, firstTrancheOffset+i+1, share))
	}

	last := firstTrancheOffset + usdrTranches - 1
	schedules = append(schedules, monthlySchedule(last, last+1, sdkmath.LegacyOneDec().Sub(cumulated)))

	return types.VestingSchedule{Denom: types.MicroSDRDenom, Schedules: schedules}
}

// FlaggedVestingSchedules returns the rebuilt schedules of FlaggedAccount.
func FlaggedVestingSchedules() ([]types.VestingSchedule, error) {
	schedules := []types.VestingSchedule{
		LunaVestingSchedule(),
		TerraVestingSchedule(),
	}
	if err := types.ValidateVestingSchedules(schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}
