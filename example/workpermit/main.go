package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"

	"github.com/permitly/permitagent/chat"
	"github.com/permitly/permitagent/conversation"
	"github.com/permitly/permitagent/export"
	"github.com/permitly/permitagent/question"
	"github.com/permitly/permitagent/translate"
	"github.com/permitly/permitagent/validation"
)

func main() {
	conf := flag.String("config", "config.json", "path to config file")
	flag.Parse()
	config, err := loadConfig(*conf)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := startApp(context.Background(), config); err != nil {
		log.Fatalf("start app: %v", err)
	}
}

func startApp(ctx context.Context, config *Config) error {
	slog.SetLogLoggerLevel(slog.LevelInfo)
	ctx = conversation.WithSessionKey(ctx, "workpermit")

	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  config.APIKey,
		Model:   config.Model,
		BaseURL: config.BaseURL,
	})
	if err != nil {
		return err
	}

	translator, err := translate.NewModelTranslator(cm, slog.Default())
	if err != nil {
		return err
	}
	assistant := chat.NewAssistant(cm)
	flow := conversation.NewFlow(
		conversation.NewMemoryStateReadWriter(),
		validation.NewModelGateway(cm),
		question.NewFailback(question.NewModelGenerator(cm), question.BankGenerator{}),
		conversation.WithTranslator(translator),
		conversation.WithSummaryModel(cm),
	)

	state, err := flow.Start(ctx, config.Language)
	if err != nil {
		return err
	}
	printNew(state, 0)
	shown := len(state.Messages)

	reader := bufio.NewReader(os.Stdin)
	fmt.Println("Befehle: /lang <code>, /chat <frage>, /demo, /export, /quit")
	for {
		fmt.Print("> ")
		input, rErr := reader.ReadString('\n')
		if rErr != nil {
			break
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		switch {
		case input == "/quit":
			return nil
		case input == "/demo":
			state, err = flow.FillDemo(ctx)
		case input == "/export":
			snap := export.Snapshot{Language: state.Language, Values: state.Values}
			fmt.Println(snap.Markdown())
			continue
		case strings.HasPrefix(input, "/chat "):
			stream, cErr := assistant.Stream(ctx, strings.TrimPrefix(input, "/chat "), state.Language)
			if cErr != nil {
				fmt.Printf("Fehler: %v\n", cErr)
				continue
			}
			answer, cErr := chat.ReadAll(ctx, stream)
			if cErr != nil {
				fmt.Printf("Fehler: %v\n", cErr)
				continue
			}
			fmt.Printf("\nAssistent: %s\n", answer)
			continue
		case strings.HasPrefix(input, "/lang "):
			state, err = flow.ChangeLanguage(ctx, strings.TrimPrefix(input, "/lang "))
		default:
			state, err = flow.Submit(ctx, input)
		}
		if err != nil {
			fmt.Printf("Fehler: %v\n", err)
			continue
		}
		printNew(state, shown)
		shown = len(state.Messages)
	}
	return nil
}

func printNew(state *conversation.State, from int) {
	for _, msg := range state.Messages[from:] {
		switch msg.Role {
		case conversation.RoleBot:
			fmt.Printf("\nAssistent: %s\n", msg.Text)
		case conversation.RoleSystem:
			fmt.Printf("[%s]\n", msg.Text)
		}
	}
}
