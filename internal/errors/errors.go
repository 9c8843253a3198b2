package gerr

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	SongNotFound   = status.Error(codes.NotFound, "song not found")
	ArtistNotFound = status.Error(codes.NotFound, "artist not found")

	InvalidRange = status.Error(codes.InvalidArgument, "start date must not be after end date")
	RangeTooLong = status.Error(codes.InvalidArgument, "date range must not exceed 3660 days")
	InvalidLimit = status.Error(codes.InvalidArgument, "limit must be positive")

	// UpstreamUnavailable marks a failed call to the user, rating or commerce service.
	UpstreamUnavailable = status.Error(codes.Unavailable, "upstream service unavailable")
)
