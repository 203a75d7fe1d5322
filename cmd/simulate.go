package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	bookClassHandler "github.com/TahaKotwal12/247-gym/internal/api/handlers/book_class"
	getScheduleHandler "github.com/TahaKotwal12/247-gym/internal/api/handlers/get_schedule"
	sendContactHandler "github.com/TahaKotwal12/247-gym/internal/api/handlers/send_contact"
	createBookingUC "github.com/TahaKotwal12/247-gym/internal/usecase/create_booking"
	getScheduleUC "github.com/TahaKotwal12/247-gym/internal/usecase/get_schedule"
	sendContactUC "github.com/TahaKotwal12/247-gym/internal/usecase/send_contact"
)

func bookCmd(configPath *string) *cobra.Command {
	var req createBookingUC.Request

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Simulate a class booking and print the result as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.booking.Execute(cmd.Context(), &req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), bookClassHandler.FromUseCaseResponse(resp))
		},
	}

	cmd.Flags().StringVar(&req.SlotID, "slot", "", "Schedule slot ID")
	cmd.Flags().StringVar(&req.Name, "name", "", "Member name")
	cmd.Flags().StringVar(&req.Email, "email", "", "Member email")
	_ = cmd.MarkFlagRequired("slot")

	return cmd
}

func contactCmd(configPath *string) *cobra.Command {
	var req sendContactUC.Request

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Simulate a contact form submission and print the result as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.contact.Execute(cmd.Context(), &req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), &sendContactHandler.ContactResponse{Success: resp.Success, Message: resp.Message})
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Sender name")
	cmd.Flags().StringVar(&req.Email, "email", "", "Sender email")
	cmd.Flags().StringVar(&req.Subject, "subject", "", "Message subject")
	cmd.Flags().StringVar(&req.Message, "message", "", "Message body")

	return cmd
}

func scheduleCmd(configPath *string) *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the weekly class schedule as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.schedule.Execute(cmd.Context(), &getScheduleUC.Request{Day: day})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), getScheduleHandler.FromUseCaseResponse(resp).Days)
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Day of week (e.g. Monday)")

	return cmd
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
