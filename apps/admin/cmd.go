package main

import (
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/skilllogic/schoolcrm/core/nav"
	"github.com/skilllogic/schoolcrm/core/school"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	out       *tabwriter.Writer
	schoolSvc *school.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  stats - print the school's dashboard figures")
	fmt.Println("  announce -title TITLE -content CONTENT [-priority PRIORITY] [-audience ROLES] - publish an announcement")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	announceCmd := flag.NewFlagSet("announce", flag.ExitOnError)
	announceTitle := announceCmd.String("title", "", "The announcement's title.")
	announceContent := announceCmd.String("content", "", "The announcement's body.")
	announcePriority := announceCmd.String("priority", school.PriorityMedium, "One of: high, medium, low.")
	announceAudience := announceCmd.String("audience", "", "Comma-separated roles. Defaults to all roles.")

	switch args[1] {
	case "stats":
		return cli.stats()
	case "announce":
		if err := announceCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *announceTitle == "" || *announceContent == "" {
			announceCmd.Usage()
			return errHelp
		}
		return cli.announce(*announceTitle, *announceContent, *announcePriority, *announceAudience)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) stats() error {
	stats, err := cli.schoolSvc.Dashboard()
	if err != nil {
		return errors.Wrap(err, "deriving dashboard stats")
	}

	fmt.Fprintf(cli.out, "Students\t%d\n", stats.TotalStudents)
	fmt.Fprintf(cli.out, "Teachers\t%d\n", stats.TotalTeachers)
	fmt.Fprintf(cli.out, "Revenue\t%d\n", stats.TotalRevenue)
	fmt.Fprintf(cli.out, "Pending fees\t%d\n", stats.PendingFees)
	fmt.Fprintf(cli.out, "Collection rate\t%.2f%%\n", stats.CollectionRate)
	fmt.Fprintf(cli.out, "Attendance today\t%.1f%%\n", stats.AttendanceToday)
	fmt.Fprintf(cli.out, "Active transport\t%d\n", stats.ActiveTransport)
	fmt.Fprintf(cli.out, "Library books\t%d\n", stats.LibraryBooks)
	return cli.out.Flush()
}

func (cli *commandLine) announce(title, content, priority, audience string) error {
	roles := nav.AllRoles
	if audience != "" {
		roles = nil
		for _, raw := range strings.Split(audience, ",") {
			roles = append(roles, nav.Role(strings.TrimSpace(raw)))
		}
	}

	data := school.NewAnnouncement{
		Title:          title,
		Content:        content,
		Priority:       priority,
		TargetAudience: roles,
	}
	if err := data.Validate(); err != nil {
		return err
	}

	announcement, err := cli.schoolSvc.Announce(data, "Admin CLI")
	if err != nil {
		return errors.Wrap(err, "publishing announcement")
	}
	fmt.Printf("published %s: %s\n", announcement.ID, announcement.Title)
	return nil
}
