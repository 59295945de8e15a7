package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"voyager.com/tableclient/internal/action"
	"voyager.com/tableclient/internal/config"
	"voyager.com/tableclient/internal/identity"
	"voyager.com/tableclient/internal/session"
	"voyager.com/tableclient/internal/transport"
	"voyager.com/tableclient/internal/ui"
	"voyager.com/tableclient/internal/util"
	"voyager.com/tableclient/logging"
)

var (
	cmdArgs    arg
	mainLogger = log.With().Str("logger_name", "main::main").Logger()
)

type arg struct {
	configFile string
	name       string
}

func init() {
	flag.StringVar(&cmdArgs.configFile, "config", "tableclient.yaml", "Client config YAML file")
	flag.StringVar(&cmdArgs.name, "name", "", "Display name. Overrides the stored identity.")
}

func main() {
	flag.Parse()
	os.Exit(tableclient())
}

func tableclient() int {
	zerolog.SetGlobalLevel(util.Env.GetZeroLogLogLevel())

	conf, err := config.ReadClientConfig(cmdArgs.configFile)
	if err != nil {
		mainLogger.Error().Msgf("Error while parsing config file: %+v", err)
		return 1
	}

	deviceID := uuid.New().String()
	store := newIdentityStore(conf, deviceID)

	ctx := context.Background()
	stdin := bufio.NewReader(os.Stdin)
	name := resolveName(ctx, conf, store, stdin)
	mainLogger.Info().
		Str(logging.PlayerNameKey, name).
		Str(logging.TableCodeKey, conf.TableCode).
		Msgf("Joining table over %s", conf.Transport)

	t, err := newTransport(ctx, conf, deviceID)
	if err != nil {
		mainLogger.Error().Msgf("Error while connecting: %+v", err)
		return 1
	}

	surface := ui.NewTerminal(os.Stdout, logging.IsColorLoggingEnabled())
	sess := session.NewSession(session.Config{
		TableCode:     conf.TableCode,
		Name:          name,
		DeviceID:      deviceID,
		ChatPerMinute: conf.Chat.MessagesPerMinute,
		PrintStateMsg: util.Env.ShouldPrintStateMsg(),
	}, t, store, surface, nil)

	if err := sess.Start(); err != nil {
		mainLogger.Error().Msgf("Error while starting session: %+v", err)
		return 1
	}
	go inputLoop(stdin, sess)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	mainLogger.Info().Msg("Shutting down")
	sess.Stop()
	return 0
}

func newIdentityStore(conf *config.ClientConfig, deviceID string) identity.Store {
	if conf.Redis.Enabled {
		return identity.NewRedisStore(conf.Redis.Addr(), conf.Redis.PW, conf.Redis.DB, deviceID)
	}
	return identity.NewMemoryStore()
}

func newTransport(ctx context.Context, conf *config.ClientConfig, deviceID string) (transport.Transport, error) {
	if conf.Transport == config.TransportWs {
		return transport.DialWs(ctx, conf.WsURL, nil)
	}
	natsURL := conf.NatsURL
	if natsURL == "" {
		natsURL = util.Env.GetNatsURL()
	}
	return transport.NewNatsTransport(natsURL, conf.TableCode, deviceID, nil)
}

type interactor interface {
	Click(id action.ButtonID)
	SendChat(msg string)
}

// inputLoop maps console input onto the session. Single-key lines drive the
// action buttons (c for check or call, b for bet or raise, f for fold); any
// other non-empty line goes out as chat.
func inputLoop(r io.Reader, sess interactor) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if id, ok := buttonForInput(line); ok {
			sess.Click(id)
			continue
		}
		sess.SendChat(line)
	}
}

func buttonForInput(line string) (action.ButtonID, bool) {
	switch strings.ToLower(line) {
	case "c":
		return action.CheckCall, true
	case "b":
		return action.BetRaise, true
	case "f":
		return action.Fold, true
	}
	return 0, false
}

// resolveName picks the display name: flag, then config, then the stored
// identity, then an interactive prompt with a guest fallback. A newly
// entered name is stored for the next session.
func resolveName(ctx context.Context, conf *config.ClientConfig, store identity.Store, stdin *bufio.Reader) string {
	if cmdArgs.name != "" {
		return cmdArgs.name
	}
	if conf.Name != "" {
		return conf.Name
	}
	stored, err := store.LoadName(ctx)
	if err != nil {
		mainLogger.Warn().Err(err).Msg("Could not load stored identity")
	}
	if stored != "" {
		return stored
	}

	fmt.Print("Enter your name: ")
	line, _ := stdin.ReadString('\n')
	name := strings.TrimSpace(line)
	if name == "" {
		name = util.GuestName()
	}
	if err := store.SaveName(ctx, name); err != nil {
		mainLogger.Warn().Err(err).Msg("Could not store identity")
	}
	return name
}
