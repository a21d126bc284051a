// Command admin is the studio back-office tool. It scans the submission
// tables for review and re-sends notification emails that never reached the
// studio inbox.
//
// Usage:
//
//	admin bookings recent
//	admin bookings list
//	admin bookings resend <bookingId>
//	admin contact list
//	admin collaborations list
//	admin instructors list
//	admin open-studio list
//	admin promo list
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"potteryloop/config"
	"potteryloop/infras/dynamo"
	"potteryloop/infras/otel"
	"potteryloop/infras/ses"
	"potteryloop/shared/logger"

	bookingModel "potteryloop/internal/domains/booking/model"
	bookingRepository "potteryloop/internal/domains/booking/repository"
	bookingService "potteryloop/internal/domains/booking/service"

	contactRepository "potteryloop/internal/domains/contact/repository"
	contactService "potteryloop/internal/domains/contact/service"

	collaborationRepository "potteryloop/internal/domains/collaboration/repository"
	collaborationService "potteryloop/internal/domains/collaboration/service"

	instructorRepository "potteryloop/internal/domains/instructor/repository"
	instructorService "potteryloop/internal/domains/instructor/service"

	openstudioRepository "potteryloop/internal/domains/openstudio/repository"
	openstudioService "potteryloop/internal/domains/openstudio/service"

	promoRepository "potteryloop/internal/domains/promo/repository"
	promoService "potteryloop/internal/domains/promo/service"
)

func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	if len(os.Args) < 3 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()

	// Traces go nowhere from a one-shot CLI run.
	otl := otel.NewNoop()
	db := dynamo.New(cfg)
	mailer := ses.New(cfg, otl)

	domain, action := os.Args[1], os.Args[2]

	var err error

	switch domain {
	case "bookings":
		svc := bookingService.New(bookingRepository.New(cfg, db, otl), mailer, cfg, otl)
		err = runBookings(ctx, svc, action, os.Args[3:])
	case "contact":
		svc := contactService.New(contactRepository.New(cfg, db, otl), mailer, otl)
		err = runList(action, func() error {
			records, listErr := svc.List(ctx)
			if listErr != nil {
				return listErr
			}

			fmt.Printf("Found %d contact messages\n\n", len(records))

			for _, record := range records {
				fmt.Printf("%s  %s <%s>  [%s]\n", record.MessageID, record.Name, record.Email, record.Status)
			}

			return nil
		})
	case "collaborations":
		svc := collaborationService.New(collaborationRepository.New(cfg, db, otl), mailer, otl)
		err = runList(action, func() error {
			records, listErr := svc.List(ctx)
			if listErr != nil {
				return listErr
			}

			fmt.Printf("Found %d collaboration inquiries\n\n", len(records))

			for _, record := range records {
				org := record.Organization
				if org == "" {
					org = "-"
				}

				fmt.Printf("%s  %s <%s>  org: %s\n", record.CollaborationID, record.Name, record.Email, org)
			}

			return nil
		})
	case "instructors":
		svc := instructorService.New(instructorRepository.New(cfg, db, otl), mailer, otl)
		err = runList(action, func() error {
			records, listErr := svc.List(ctx)
			if listErr != nil {
				return listErr
			}

			fmt.Printf("Found %d instructor applications\n\n", len(records))

			for _, record := range records {
				fmt.Printf("%s  %s <%s>  experience: %s\n", record.ApplicationID, record.Name, record.Email, record.Experience)
			}

			return nil
		})
	case "open-studio":
		svc := openstudioService.New(openstudioRepository.New(cfg, db, otl), mailer, otl)
		err = runList(action, func() error {
			records, listErr := svc.List(ctx)
			if listErr != nil {
				return listErr
			}

			fmt.Printf("Found %d waitlist requests\n\n", len(records))

			for _, record := range records {
				fmt.Printf("%s  %s  course date: %s\n", record.WaitlistID, record.Email, record.CourseDate)
			}

			return nil
		})
	case "promo":
		svc := promoService.New(promoRepository.New(cfg, db, otl), mailer, cfg, otl)
		err = runList(action, func() error {
			records, listErr := svc.List(ctx)
			if listErr != nil {
				return listErr
			}

			fmt.Printf("Found %d game plays\n\n", len(records))

			for _, record := range records {
				fmt.Printf("%s  %s <%s>  %s  emailSent: %t\n", record.ID, record.Name, record.Email, record.Code, record.EmailSent)
			}

			return nil
		})
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runBookings(ctx context.Context, svc bookingService.Booking, action string, args []string) error {
	switch action {
	case "recent":
		records, err := svc.Recent(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Showing %d most recent bookings\n\n", len(records))
		printBookings(records)

		return nil
	case "list":
		records, err := svc.List(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Found %d bookings\n\n", len(records))
		printBookings(records)

		return nil
	case "resend":
		if len(args) < 1 {
			return fmt.Errorf("resend requires a booking id")
		}

		if err := svc.Resend(ctx, args[0]); err != nil {
			return err
		}

		fmt.Println("Notification email re-sent for", args[0])

		return nil
	default:
		return fmt.Errorf("unknown bookings action %q", action)
	}
}

func printBookings(records []bookingModel.Submission) {
	for _, record := range records {
		size := fmt.Sprintf("%d", record.GroupSize)
		if record.ExactGroupSize != nil {
			size = fmt.Sprintf("%d (exactly %d)", record.GroupSize, *record.ExactGroupSize)
		}

		fmt.Printf("%s  %s\n", record.BookingID, record.Timestamp)
		fmt.Printf("  %s <%s>\n", record.Contact.Name, record.Contact.Email)
		fmt.Printf("  events: %s  group: %s  [%s]\n\n", strings.Join(record.EventTypes, ", "), size, record.Status)
	}
}

func runList(action string, list func() error) error {
	if action != "list" {
		return fmt.Errorf("unknown action %q, expected list", action)
	}

	return list()
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: admin <bookings|contact|collaborations|instructors|open-studio|promo> <recent|list|resend> [id]")
}
