package metrics

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/audira/music-metrics/internal/dto"
	v "github.com/go-ozzo/ozzo-validation/v4"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var dateRule = v.Date(time.DateOnly).Error("must be a date in YYYY-MM-DD format")

type artistRequest struct {
	ArtistID int64 `json:"artistId"`
}

func (f *artistRequest) Validate() error {
	return validateStruct(f,
		v.Field(&f.ArtistID, v.Min(int64(1))),
	)
}

type detailedRequest struct {
	ArtistID  int64  `json:"artistId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (f *detailedRequest) Validate() error {
	return validateStruct(f,
		v.Field(&f.ArtistID, v.Min(int64(1))),
		v.Field(&f.StartDate, dateRule),
		v.Field(&f.EndDate, dateRule),
	)
}

// dateRange resolves the requested bounds. A missing end defaults to today and a
// missing start to defaultRangeDays days ending at end.
func (f *detailedRequest) dateRange(now time.Time) (start, end time.Time, err error) {
	end = now.UTC().Truncate(24 * time.Hour)
	if f.EndDate != "" {
		if end, err = dto.ParseDate(f.EndDate); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid endDate %q, expected YYYY-MM-DD", f.EndDate)
		}
	}
	start = end.AddDate(0, 0, -(defaultRangeDays - 1))
	if f.StartDate != "" {
		if start, err = dto.ParseDate(f.StartDate); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid startDate %q, expected YYYY-MM-DD", f.StartDate)
		}
	}
	return start, end, nil
}

// topSongsRequest leaves a zero limit to the report builder, which rejects it.
type topSongsRequest struct {
	ArtistID int64 `json:"artistId"`
	Limit    int   `json:"limit"`
}

func (f *topSongsRequest) Validate() error {
	return validateStruct(f,
		v.Field(&f.ArtistID, v.Min(int64(1))),
		v.Field(&f.Limit, v.Min(1)),
	)
}

type songRequest struct {
	SongID int64 `json:"songId"`
}

func (f *songRequest) Validate() error {
	return validateStruct(f,
		v.Field(&f.SongID, v.Min(int64(1))),
	)
}

// validateStruct runs rules against structPtr and folds the violations into a single
// InvalidArgument status carrying errdetails.BadRequest.
func validateStruct(structPtr any, rules ...*v.FieldRules) error {
	err := v.ValidateStruct(structPtr, rules...)
	if err == nil {
		return nil
	}
	var ve v.Errors
	if !errors.As(err, &ve) {
		return status.Error(codes.Internal, err.Error())
	}

	br := &errdetails.BadRequest{}
	for field, fe := range ve {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       field,
			Description: formatErrMsg(fe.Error()),
		})
	}

	st, err := status.New(codes.InvalidArgument, ve.Error()).WithDetails(br)
	if err != nil {
		return status.New(codes.Internal, err.Error()).Err()
	}
	return st.Err()
}

func formatErrMsg(s string) string {
	return ucfirst(strings.Trim(s, " .")) + "."
}

func ucfirst(str string) string {
	for _, r := range str {
		return string(unicode.ToUpper(r)) + str[utf8.RuneLen(r):]
	}
	return ""
}
