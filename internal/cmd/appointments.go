package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clinbook/clinbook/internal/api"
)

// appointmentList renders booked consultations for text output
type appointmentList []api.Appointment

func (l appointmentList) RenderText() string {
	if len(l) == 0 {
		return "No appointments booked.\n"
	}

	var b strings.Builder
	for _, appt := range l {
		clinic := appt.Clinic
		if clinic == "" {
			clinic = fmt.Sprintf("clinic #%d", appt.ClinicID)
		}
		fmt.Fprintf(&b, "%s %s  %s", appt.Date, appt.Time, clinic)
		if appt.Reason != "" {
			fmt.Fprintf(&b, "  (%s)", appt.Reason)
		}
		b.WriteString("\n")
	}
	return b.String()
}

var appointmentsCmd = &cobra.Command{
	Use:   "appointments",
	Short: "Book and list consultations",
}

// appointmentsListCmd lists the signed-in user's consultations
var appointmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your booked consultations",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}

		appts, err := app.client.MyAppointments(cmd.Context())
		if err != nil {
			return err
		}

		formatter, err := app.formatter()
		if err != nil {
			return err
		}
		return formatter.Format(appointmentList(appts))
	},
}

// appointmentsBookCmd books a consultation at a clinic
var appointmentsBookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book a consultation",
	Long: `Book a consultation at a clinic. Requires a signed-in session.

Examples:
  clinbook appointments book --clinic 3 --date 2026-09-15 --time 14:30
  clinbook appointments book --clinic 3 --date 2026-09-15 --time 14:30 --reason "Annual checkup"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		clinicID, _ := cmd.Flags().GetInt("clinic")
		date, _ := cmd.Flags().GetString("date")
		timeStr, _ := cmd.Flags().GetString("time")
		reason, _ := cmd.Flags().GetString("reason")

		if clinicID == 0 {
			return fmt.Errorf("--clinic is required")
		}
		if date == "" {
			return fmt.Errorf("--date is required")
		}
		if timeStr == "" {
			return fmt.Errorf("--time is required")
		}

		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}

		req := api.AppointmentRequest{
			ClinicID: clinicID,
			Date:     date,
			Time:     timeStr,
			Reason:   reason,
		}
		if err := app.client.BookAppointment(cmd.Context(), req); err != nil {
			return err
		}

		fmt.Printf("Appointment booked for %s at %s.\n", date, timeStr)
		return nil
	},
}

func init() {
	appointmentsBookCmd.Flags().Int("clinic", 0, "clinic id")
	appointmentsBookCmd.Flags().String("date", "", "consultation date (YYYY-MM-DD)")
	appointmentsBookCmd.Flags().String("time", "", "consultation time (HH:MM)")
	appointmentsBookCmd.Flags().String("reason", "", "reason for the visit")

	appointmentsCmd.AddCommand(appointmentsListCmd)
	appointmentsCmd.AddCommand(appointmentsBookCmd)
	rootCmd.AddCommand(appointmentsCmd)
}
