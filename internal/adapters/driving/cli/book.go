package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wayfarer-labs/wayfarer-cli/internal/core/domain"
)

// travelDateLayout is the date format the wizard accepts.
const travelDateLayout = "2006-01-02"

var bookCmd = &cobra.Command{
	Use:   "book <package-id>",
	Short: "Book a package through the interactive checkout",
	Long: `Walks through the checkout for a package step by step:
travel date, participants, contact details and payment. No charge is
ever made; the card details only complete the form and are discarded
after masking.`,
	Args: cobra.ExactArgs(1),
	RunE: runBook,
}

func init() {
	rootCmd.AddCommand(bookCmd)
}

func runBook(cmd *cobra.Command, args []string) error {
	if checkoutService == nil {
		return errors.New("checkout service not configured")
	}

	ctx := context.Background()
	draft, err := checkoutService.Start(ctx, args[0])
	if err != nil {
		return err
	}

	pkg, err := catalogService.PackageByID(ctx, draft.PackageID)
	if err != nil {
		return err
	}

	cmd.Printf("Booking: %s\n", pkg.Title)
	cmd.Printf("%s, %s · %d days · from %s per person\n", pkg.Destination, pkg.Country, pkg.DurationDays, formatPrice(pkg.Price.Min))
	cmd.Println()

	reader := bufio.NewReader(os.Stdin)

	// Step 1: Travel date
	cmd.Println("Step 1: Travel Date")
	cmd.Println("-------------------")
	for {
		cmd.Printf("Departure date (%s): ", travelDateLayout)
		input := readLine(reader)
		date, parseErr := time.Parse(travelDateLayout, input)
		if parseErr != nil {
			cmd.Println("Please enter a date like 2025-12-20.")
			continue
		}
		if err := checkoutService.SetTravelDate(draft, date); err != nil {
			cmd.Println("That date has already passed.")
			continue
		}
		break
	}
	cmd.Println()

	// Step 2: Participants
	cmd.Println("Step 2: Travelers")
	cmd.Println("-----------------")
	for {
		cmd.Print("Number of travelers [1]: ")
		count := parseChoice(readLine(reader), 20, 1)
		if err := checkoutService.SetParticipants(draft, count); err != nil {
			cmd.Println("At least one traveler is required.")
			continue
		}
		break
	}
	cmd.Println()

	// Step 3: Contact
	cmd.Println("Step 3: Contact Details")
	cmd.Println("-----------------------")
	for {
		cmd.Print("Full name: ")
		name := readLine(reader)
		cmd.Print("Email: ")
		email := readLine(reader)
		cmd.Print("Phone (optional): ")
		phone := readLine(reader)

		contact := domain.ContactInfo{FullName: name, Email: email, Phone: phone}
		if err := checkoutService.SetContact(draft, contact); err != nil {
			cmd.Println("Name and a valid email are required.")
			continue
		}
		break
	}
	cmd.Println()

	// Step 4: Payment
	cmd.Println("Step 4: Payment")
	cmd.Println("---------------")
	for {
		cmd.Print("Cardholder name: ")
		holder := readLine(reader)
		cmd.Print("Card number: ")
		number := readCardNumber()
		cmd.Println()
		cmd.Print("Expiry (MM/YYYY): ")
		month, year := parseExpiry(readLine(reader))

		payment := domain.PaymentDetails{
			CardholderName: holder,
			CardNumber:     number,
			ExpiryMonth:    month,
			ExpiryYear:     year,
		}
		if err := checkoutService.SetPayment(draft, payment); err != nil {
			cmd.Println("Please check the card details and try again.")
			continue
		}
		break
	}
	cmd.Println()

	// Step 5: Confirmation
	total := pkg.Price.Min * float64(draft.Participants)
	cmd.Println("Step 5: Confirmation")
	cmd.Println("--------------------")
	cmd.Printf("%s · %s · %d traveler(s) · total %s\n",
		pkg.Title, draft.TravelDate.Format(travelDateLayout), draft.Participants, formatPrice(total))
	cmd.Print("Confirm booking? [y/N]: ")
	if answer := strings.ToLower(readLine(reader)); answer != "y" && answer != "yes" {
		cmd.Println("Booking cancelled.")
		return nil
	}

	conf, err := checkoutService.Confirm(ctx, draft)
	if err != nil {
		return fmt.Errorf("confirming booking: %w", err)
	}

	cmd.Println()
	cmd.Println("Booking confirmed!")
	cmd.Printf("  Code:       %s\n", conf.Code)
	cmd.Printf("  Package:    %s\n", conf.PackageTitle)
	cmd.Printf("  Date:       %s\n", conf.TravelDate.Format(travelDateLayout))
	cmd.Printf("  Travelers:  %d\n", conf.Participants)
	cmd.Printf("  Total:      %s\n", formatPrice(conf.TotalPrice))
	cmd.Printf("  Card:       %s\n", conf.MaskedCard)
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

// readCardNumber reads the card number without echoing it when stdin is
// a terminal.
//
//nolint:errcheck // CLI helper, error ignored for UX
func readCardNumber() string {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		number, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return strings.TrimSpace(string(number))
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// parseExpiry parses "MM/YYYY" into its parts. Invalid input yields
// zeros, which payment validation rejects.
func parseExpiry(input string) (month, year int) {
	parts := strings.SplitN(input, "/", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	month, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	year, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	return month, year
}
