package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/feretizpina/uber-slack/internal/domain/geo"
	"github.com/feretizpina/uber-slack/internal/domain/ride"
	"github.com/feretizpina/uber-slack/internal/observability"
	"github.com/feretizpina/uber-slack/pkg/logger"
)

// Notifier delivers a final text message out-of-band, to the slash command's
// response URL.
type Notifier interface {
	Notify(ctx context.Context, responseURL, text string) error
}

// Deps holds the collaborators an Interpreter works through.
type Deps struct {
	Resolver geo.Resolver
	Provider ride.Provider
	Rides    ride.Repository
	Notifier Notifier
	Logger   *logger.Logger
	// Now defaults to time.Now; injectable for the staleness rule in tests.
	Now func() time.Time
}

// Interpreter parses slash-command text and runs the ride workflows. It
// carries no per-command state: handlers receive and return ride values.
type Interpreter struct {
	resolver geo.Resolver
	provider ride.Provider
	rides    ride.Repository
	notifier Notifier
	log      *logger.Logger
	now      func() time.Time
}

// Request is one slash-command invocation.
type Request struct {
	UserID      string
	Text        string
	ResponseURL string
}

// New creates an interpreter.
func New(deps Deps) *Interpreter {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Interpreter{
		resolver: deps.Resolver,
		provider: deps.Provider,
		rides:    deps.Rides,
		notifier: deps.Notifier,
		log:      deps.Logger,
		now:      now,
	}
}

// Run dispatches one command and returns the synchronous reply text. An
// empty reply with a nil error means the outcome was (or will be) delivered
// through the notifier. Errors are backend failures only; anything the user
// caused comes back as reply text.
func (i *Interpreter) Run(ctx context.Context, req Request) (string, error) {
	name, arg := splitCommand(req.Text)
	observability.CommandsTotal.WithLabelValues(string(name)).Inc()

	i.log.Info("command received",
		logger.String("user_id", req.UserID),
		logger.String("command", string(name)),
	)

	switch name {
	case NameHelp:
		return helpText, nil
	case NameEstimate:
		return i.estimate(ctx, arg)
	case NameRide:
		return i.rideCmd(ctx, req, arg)
	case NameAccept:
		return i.accept(ctx, req)
	default:
		return unknownCommandError, nil
	}
}

// estimate quotes the trip and describes duration, cost and surge.
func (i *Interpreter) estimate(ctx context.Context, arg string) (string, error) {
	start, end, reply, err := i.resolveTrip(ctx, arg)
	if err != nil || reply != "" {
		return reply, err
	}

	_, est, err := i.quote(ctx, start, end)
	if err != nil {
		return "", err
	}

	return formatEstimate(est), nil
}

// rideCmd quotes the trip, then either books immediately (no surge) or
// persists a pending ride awaiting an accept.
func (i *Interpreter) rideCmd(ctx context.Context, req Request, arg string) (string, error) {
	start, end, reply, err := i.resolveTrip(ctx, arg)
	if err != nil || reply != "" {
		return reply, err
	}

	productID, est, err := i.quote(ctx, start, end)
	if err != nil {
		return "", err
	}

	rd := &ride.Ride{
		UserID:         req.UserID,
		ProductID:      productID,
		StartLatitude:  start.Latitude,
		StartLongitude: start.Longitude,
		EndLatitude:    end.Latitude,
		EndLongitude:   end.Longitude,
	}

	if est.SurgeMultiplier > 1 {
		rd.Status = ride.StatusPending
		rd.SurgeConfirmationID = est.SurgeConfirmationID
		if err := i.rides.Create(ctx, rd); err != nil {
			return "", err
		}
		i.log.Info("surge confirmation required",
			logger.String("user_id", req.UserID),
			logger.Float64("surge_multiplier", est.SurgeMultiplier),
		)
		return fmt.Sprintf("%v surge is in effect. Reply '/uber accept' to confirm the ride.", est.SurgeMultiplier), nil
	}

	rd.Status = ride.StatusBooked
	if err := i.rides.Create(ctx, rd); err != nil {
		return "", err
	}

	booking, err := i.provider.RequestRide(ctx, ride.BookingRequest{
		Start:     start,
		End:       end,
		ProductID: productID,
	})
	if err != nil {
		return "", err
	}
	observability.BookingsTotal.WithLabelValues("direct").Inc()

	rd.RequestID = booking.RequestID
	if err := i.rides.Update(ctx, rd); err != nil {
		return "", err
	}

	if err := i.notifier.Notify(ctx, req.ResponseURL, formatArrival(booking.ETASeconds)); err != nil {
		return "", err
	}
	// The real answer went through the notifier.
	return "", nil
}

// accept books the most recent ride with its stored surge confirmation, or
// restarts the whole ride workflow when the confirmation has gone stale.
func (i *Interpreter) accept(ctx context.Context, req Request) (string, error) {
	rd, err := i.rides.MostRecentByUser(ctx, req.UserID)
	if err != nil {
		// Includes ride.ErrRideNotFound: accepting with nothing on file is
		// caller misuse, not a conversational reply.
		return "", err
	}

	if rd.ConfirmationStale(i.now()) {
		// Requote from the stored coordinates; the stale token is never sent.
		arg := fmt.Sprintf("%v, %v to %v, %v",
			rd.StartLatitude, rd.StartLongitude,
			rd.EndLatitude, rd.EndLongitude)
		i.log.Info("surge confirmation stale, requoting",
			logger.String("user_id", req.UserID),
			logger.String("ride_id", rd.ID.String()),
		)
		return i.rideCmd(ctx, req, arg)
	}

	booking, err := i.provider.RequestRide(ctx, ride.BookingRequest{
		Start:               geo.Point{Latitude: rd.StartLatitude, Longitude: rd.StartLongitude},
		End:                 geo.Point{Latitude: rd.EndLatitude, Longitude: rd.EndLongitude},
		ProductID:           rd.ProductID,
		SurgeConfirmationID: rd.SurgeConfirmationID,
	})
	if err != nil {
		return "", err
	}
	observability.BookingsTotal.WithLabelValues("confirmed").Inc()

	rd.Status = ride.StatusBooked
	rd.RequestID = booking.RequestID
	if err := i.rides.Update(ctx, rd); err != nil {
		return "", err
	}

	if err := i.notifier.Notify(ctx, req.ResponseURL, formatArrival(booking.ETASeconds)); err != nil {
		return "", err
	}
	return "", nil
}

// resolveTrip parses the address argument and geocodes both ends. A non-empty
// reply means a user-caused problem already formatted for the conversation.
func (i *Interpreter) resolveTrip(ctx context.Context, arg string) (start, end geo.Point, reply string, err error) {
	pair, perr := parseAddressPair(arg)
	if perr != nil {
		return geo.Point{}, geo.Point{}, rideRequestFormatError, nil
	}

	start, err = i.resolver.Resolve(ctx, pair.Origin)
	if errors.Is(err, geo.ErrLocationNotFound) {
		return geo.Point{}, geo.Point{}, locationNotFoundError, nil
	}
	if err != nil {
		return geo.Point{}, geo.Point{}, "", err
	}

	end, err = i.resolver.Resolve(ctx, pair.Destination)
	if errors.Is(err, geo.ErrLocationNotFound) {
		return geo.Point{}, geo.Point{}, locationNotFoundError, nil
	}
	if err != nil {
		return geo.Point{}, geo.Point{}, "", err
	}

	return start, end, "", nil
}

// quote lists products at the origin, picks the first in provider order and
// estimates the trip for it.
func (i *Interpreter) quote(ctx context.Context, start, end geo.Point) (string, *ride.Estimate, error) {
	products, err := i.provider.ListProducts(ctx, start)
	if err != nil {
		return "", nil, err
	}
	if len(products) == 0 {
		return "", nil, fmt.Errorf("no products available at %v, %v", start.Latitude, start.Longitude)
	}

	productID := products[0].ProductID
	est, err := i.provider.EstimateTrip(ctx, start, end, productID)
	if err != nil {
		return "", nil, err
	}
	return productID, est, nil
}
