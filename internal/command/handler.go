package command

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"carrental/internal/db"
	apperrors "carrental/internal/errors"
	"carrental/internal/service"
)

const (
	usageReserve = "Usage: reserve <car> <from-date> <to-date>"
	usageSetDate = "Usage: setdate <yyyy-mm-dd>"
	usageSetCar  = "Usage: setcar <car_type> <amount>"
	unknown      = "Unknown command. Type 'help'."
)

const helpText = `Available commands:
  reserve <car> <from> <to>    - Create a reservation
  info                         - Show date, inventory and reservations
  jump <something>             - Debug/test command
  reset                        - Reset the entire database
  setdate <yyyy-mm-dd>         - Set the simulation date
  setcar <car_type> <amount>   - Set the amount owned of a car type
  help                         - Show this help message
  stop                         - Quit the program`

// Handler turns REPL input lines into reservation service calls and writes
// the user-facing result to Out.
type Handler struct {
	Reservations *service.ReservationService
	Out          io.Writer
}

func NewHandler(svc *service.ReservationService, out io.Writer) *Handler {
	return &Handler{Reservations: svc, Out: out}
}

// Execute runs one input line. It returns true once the session should end.
func (h *Handler) Execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	args := fields[1:]
	switch strings.ToLower(fields[0]) {
	case "reserve":
		h.reserve(ctx, args)
	case "info":
		h.info(ctx)
	case "jump":
		h.println("Jump executed.")
	case "reset":
		h.reset(ctx)
	case "setdate":
		h.setDate(ctx, args)
	case "setcar":
		h.setCar(ctx, args)
	case "help":
		h.println(helpText)
	case "stop":
		return true
	default:
		h.println(unknown)
	}
	return false
}

func (h *Handler) reserve(ctx context.Context, args []string) {
	if len(args) != 3 {
		h.println(usageReserve)
		return
	}
	remaining, err := h.Reservations.Reserve(ctx, args[0], args[1], args[2])
	if err != nil {
		h.fail(err)
		return
	}
	h.printf("Reservation saved! (%d %s(s) still available)\n", remaining, strings.ToLower(args[0]))
}

func (h *Handler) reset(ctx context.Context) {
	if err := h.Reservations.ResetAll(ctx); err != nil {
		h.fail(err)
		return
	}
	h.println("Database reset.")
}

func (h *Handler) setDate(ctx context.Context, args []string) {
	if len(args) != 1 {
		h.println(usageSetDate)
		return
	}
	if err := h.Reservations.SetSimulatedDate(ctx, args[0]); err != nil {
		h.fail(err)
		return
	}
	h.println("Date set to " + args[0])
}

func (h *Handler) setCar(ctx context.Context, args []string) {
	if len(args) != 2 {
		h.println(usageSetCar)
		return
	}
	amount, err := strconv.Atoi(args[1])
	if err != nil {
		// rejected as an invalid amount once the car type has been checked
		amount = -1
	}
	if err := h.Reservations.SetInventory(ctx, args[0], amount); err != nil {
		h.fail(err)
		return
	}
	h.printf("Set %s amount to %d\n", strings.ToUpper(args[0]), amount)
}

func (h *Handler) info(ctx context.Context) {
	info, err := h.Reservations.Info(ctx)
	if err != nil {
		h.fail(err)
		return
	}

	h.println("=== System Information ===")
	if info.CurrentDate != nil {
		h.println("Current date: " + info.CurrentDate.Format(db.DateLayout))
	} else {
		h.println("Current date: not set")
	}

	h.println("\nCar amounts:")
	if len(info.Cars) == 0 {
		h.println(" No cars defined.")
	}
	for _, ct := range db.CarTypes {
		if amount, ok := info.Cars[ct.String()]; ok {
			h.printf("%s: %d\n", ct, amount)
		}
	}

	if len(info.Today) > 0 {
		h.println("\nAvailable today:")
		for _, d := range info.Today {
			if d.Booked == 0 {
				h.printf(" %s: %d of %d (no cars booked)\n", d.CarType, d.Available, d.Total)
				continue
			}
			h.printf(" %s: %d of %d\n", d.CarType, d.Available, d.Total)
		}
	}

	h.println("\nReservations:")
	if len(info.Reservations) == 0 {
		h.println(" No reservations.")
	}
	for _, res := range info.Reservations {
		h.println(" " + res.String())
	}
}

func (h *Handler) fail(err error) {
	if apperrors.IsValidation(err) {
		h.println(err.Error())
		return
	}
	h.printf("Error: %v\n", err)
}

func (h *Handler) println(s string) {
	fmt.Fprintln(h.Out, s)
}

func (h *Handler) printf(format string, a ...interface{}) {
	fmt.Fprintf(h.Out, format, a...)
}
