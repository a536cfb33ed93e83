/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package main

import (
	"fmt"
	"os"

	portrunner "github.com/allbin/port-runner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List serial ports usable as link endpoints",
	Long: `List the serial devices on this system that can serve as the -t or -r
end of a link under test.

The scan covers communication-capable serial devices:
- USB serial adapters (ttyUSB*)
- USB CDC/ACM devices (ttyACM*)
- Standard serial ports (ttyS*)
- ARM/Raspberry Pi ports (ttyAMA*)
- And other platform-specific serial devices

Virtual terminals and pseudo-terminals are excluded from the listing.`,
	Run: func(cmd *cobra.Command, args []string) {
		ports, err := portrunner.ListPorts()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing ports: %v\n", err)
			os.Exit(1)
		}

		if len(ports) == 0 {
			fmt.Println("No serial ports found")
			return
		}

		describe, _ := cmd.Flags().GetBool("describe")
		if describe {
			renderDescribed(ports)
		} else {
			for _, port := range ports {
				fmt.Println(port.Path)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().Bool("describe", false, "Include a description column for each port")
}

// renderDescribed prints the port list with a description column
func renderDescribed(ports []portrunner.PortInfo) {
	fmt.Printf("Found %d serial port(s):\n\n", len(ports))

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("240"))

	fmt.Println(headerStyle.Render(fmt.Sprintf("%-20s %-30s", "Port", "Description")))
	for _, port := range ports {
		fmt.Printf("%-20s %-30s\n", port.Path, port.Description)
	}
}
