package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tutorlink/client/internal/api"
	"github.com/tutorlink/client/internal/config"
	"github.com/tutorlink/client/internal/geo"
	"github.com/tutorlink/client/internal/guard"
	"github.com/tutorlink/client/internal/logger"
	"github.com/tutorlink/client/internal/model"
	"github.com/tutorlink/client/internal/realtime"
	"github.com/tutorlink/client/internal/session"
	"github.com/tutorlink/client/internal/storage"
	"github.com/tutorlink/client/internal/validate"
	"github.com/tutorlink/client/internal/wizard"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
)

// navigator tracks the current route; the API client forces it to sign-in
// on an authorization failure.
type navigator struct {
	route string
}

func (n *navigator) NavigateTo(route string) {
	n.route = route
}

type app struct {
	cfg     *config.Config
	logger  *logger.Logger
	nav     *navigator
	store   *session.Store
	client  *api.Client
	rt      *realtime.Client
	locator geo.Locator
	reader  *bufio.Reader
}

func main() {
	// Optional .env for local development; real environments set vars
	// directly.
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	kv, err := storage.OpenBolt(cfg.Storage.Path)
	if err != nil {
		logger.Fatal("failed to open session storage", "error", err)
	}
	defer kv.Close()

	nav := &navigator{route: guard.RouteHome}
	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, kv, nav, logger)
	store := session.NewStore(kv, client, logger)

	if err := store.Init(); err != nil {
		logger.Fatal("failed to initialize session", "error", err)
	}

	a := &app{
		cfg:     cfg,
		logger:  logger,
		nav:     nav,
		store:   store,
		client:  client,
		rt:      realtime.NewClient(cfg.Realtime.URL, cfg.Realtime.ReconnectAttempts, cfg.Realtime.ReconnectDelay, logger),
		locator: geo.NewHTTPLocator(cfg.Geo.Endpoint, cfg.Geo.Timeout),
		reader:  bufio.NewReader(os.Stdin),
	}

	fmt.Printf("TutorLink client %s (%s)\n", buildVersion, buildDate)
	a.run()
}

func (a *app) run() {
	defer a.rt.Disconnect()

	for {
		switch guard.Decide(a.store.Ready(), a.store.IsSignedIn(), a.store.Role(), "") {
		case guard.Wait:
			fmt.Println("Loading...")
		case guard.RedirectSignIn, guard.RedirectHome:
			a.nav.route = guard.RouteSignIn
			if !a.publicMenu() {
				return
			}
		case guard.Allow:
			a.nav.route = guard.HomeFor(a.store.Role())
			if !a.signedInMenu() {
				return
			}
			// A 401 purge mid-menu lands us back here; the next
			// Decide sees the cleared session and routes to sign-in.
			if a.nav.route == guard.RouteSignIn {
				a.rt.Disconnect()
			}
		}
	}
}

func (a *app) publicMenu() bool {
	fmt.Println("\n1) Sign in  2) Register as learner  3) Register as provider  q) Quit")

	switch a.prompt("> ") {
	case "1":
		a.signIn()
	case "2":
		a.register(model.RoleLearner)
	case "3":
		a.register(model.RoleProvider)
	case "q":
		return false
	}
	return true
}

func (a *app) signedInMenu() bool {
	identity, _ := a.store.Identity()
	fmt.Printf("\nSigned in as %s [%s]\n", identity.Name, identity.Role)
	fmt.Println("1) Bookings  2) Chat  3) Sign out  q) Quit")

	switch a.prompt("> ") {
	case "1":
		a.showBookings()
	case "2":
		a.chat()
	case "3":
		a.rt.Disconnect()
		a.store.SignOut()
		a.nav.route = guard.RouteHome
	case "q":
		return false
	}
	return true
}

func (a *app) signIn() {
	email := a.prompt("email: ")
	password := a.prompt("password: ")

	if err := a.store.SignIn(context.Background(), email, password); err != nil {
		fmt.Println("Sign-in failed:", err)
		return
	}
}

// register walks the four-step wizard on the terminal.
func (a *app) register(role model.Role) {
	w := wizard.New(role, a.store, a.locator, a.logger)

	for w.State() != wizard.StateDone {
		a.renderStep(w)

		switch a.prompt("[n]ext / [p]rev / [l]ocation / [s]ubmit / [c]ancel > ") {
		case "n":
			a.editStep(w, role)
			if !w.Next() {
				fmt.Println("!", w.Err())
			}
		case "p":
			w.Prev()
		case "l":
			if err := w.CaptureLocation(context.Background()); err != nil {
				fmt.Println("!", w.Err())
			} else {
				fmt.Println("Location captured.")
			}
		case "s":
			if w.Step() == wizard.StepAddress {
				a.editStep(w, role)
			}
			if err := w.Submit(context.Background()); err != nil {
				fmt.Println("!", w.Err())
				continue
			}
			identity, _ := a.store.Identity()
			a.nav.route = guard.HomeFor(identity.Role)
			fmt.Println("Registration complete. Welcome!")
		case "c":
			// Draft is discarded on navigation away.
			return
		}
	}
}

func (a *app) renderStep(w *wizard.Wizard) {
	names := map[int]string{
		wizard.StepAccount: "Account",
		wizard.StepProfile: "Profile",
		wizard.StepAadhaar: "Aadhaar",
		wizard.StepAddress: "Address",
	}
	fmt.Printf("\n-- Step %d/4: %s --\n", w.Step(), names[w.Step()])
}

func (a *app) editStep(w *wizard.Wizard, role model.Role) {
	d := w.Draft()

	switch w.Step() {
	case wizard.StepAccount:
		d.Name = a.promptDefault("full name", d.Name)
		d.Email = a.promptDefault("email", d.Email)
		d.Password = a.promptDefault("password", d.Password)
		d.ConfirmPassword = a.promptDefault("confirm password", d.ConfirmPassword)
		d.Phone = a.promptDefault("phone (10 digits)", d.Phone)
	case wizard.StepProfile:
		if role == model.RoleProvider {
			subjects := a.promptDefault("subjects (comma-separated)", strings.Join(d.Subjects, ","))
			d.Subjects = splitList(subjects)
			fmt.Sscanf(a.promptDefault("experience years", fmt.Sprint(d.ExperienceYears)), "%d", &d.ExperienceYears)
			fmt.Sscanf(a.promptDefault("hourly rate (INR)", fmt.Sprint(d.HourlyRate)), "%d", &d.HourlyRate)
			return
		}
		d.DependentName = a.promptDefault("student name", d.DependentName)
		d.Grade = a.promptDefault(fmt.Sprintf("class %v", validate.Grades), d.Grade)
		d.Board = a.promptDefault(fmt.Sprintf("board %v", validate.Boards), d.Board)
		d.PreviousMarks = a.promptDefault("previous marks (optional)", d.PreviousMarks)
	case wizard.StepAadhaar:
		d.AadhaarNumber = a.promptDefault("Aadhaar number (12 digits)", d.AadhaarNumber)
	case wizard.StepAddress:
		d.Address.Street = a.promptDefault("street", d.Address.Street)
		d.Address.City = a.promptDefault("city", d.Address.City)
		d.Address.State = a.promptDefault("state", d.Address.State)
		d.Address.Pincode = a.promptDefault("pincode", d.Address.Pincode)
	}
}

func (a *app) showBookings() {
	bookings, err := a.client.ListBookings(context.Background())
	if err != nil {
		fmt.Println("Could not load bookings:", err)
		return
	}
	if len(bookings) == 0 {
		fmt.Println("No bookings yet.")
		return
	}
	for _, b := range bookings {
		fmt.Printf("  %s  %-12s %s\n", b.ID, b.Status, b.Subject)
	}
}

func (a *app) chat() {
	identity, ok := a.store.Identity()
	if !ok {
		fmt.Println("Profile not loaded; cannot open chat.")
		return
	}

	if _, err := a.rt.Connect(context.Background(), identity.ID); err != nil {
		fmt.Println("Could not connect:", err)
		return
	}

	unsubscribe := a.rt.Subscribe(realtime.EventReceiveMessage, func(data json.RawMessage) {
		var msg realtime.ChatMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return
		}
		fmt.Printf("\n[%s] %s\n", msg.SenderID, msg.Body)
	})
	defer unsubscribe()

	peer := a.prompt("chat with user id: ")
	fmt.Println("Type messages; empty line to leave the chat.")

	for {
		line := a.prompt("me: ")
		if line == "" {
			return
		}
		a.rt.SendChatMessage(realtime.ChatMessage{
			SenderID:   identity.ID,
			ReceiverID: peer,
			Body:       line,
		})
	}
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	line, _ := a.reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func (a *app) promptDefault(label, current string) string {
	if current != "" {
		label = fmt.Sprintf("%s [%s]", label, current)
	}
	value := a.prompt(label + ": ")
	if value == "" {
		return current
	}
	return value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
