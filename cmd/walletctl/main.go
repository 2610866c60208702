// Copyright 2022 The Armored Wallet authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build !tamago
// +build !tamago

// walletctl talks to an armored wallet over USB, or to the emulator over
// UDP.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/urfave/cli/v3"

	"github.com/transparency-dev/armored-wallet/api"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	app := &cli.Command{
		Name:  "walletctl",
		Usage: "Armored wallet control tool",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "udp",
				Usage: "Emulator address, the USB device is used when unset",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "features",
				Usage:  "Show device information",
				Action: withClient(features),
			}, {
				Name:   "initialize",
				Usage:  "Reset the session and show device information",
				Action: withClient(initialize),
			}, {
				Name:  "ping",
				Usage: "Ask the device to echo a message",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "button", Usage: "Require a button confirmation"},
					&cli.BoolFlag{Name: "pin", Usage: "Require the PIN"},
					&cli.BoolFlag{Name: "passphrase", Usage: "Require the passphrase"},
				},
				Action: withClient(ping),
			}, {
				Name:  "change-pin",
				Usage: "Set, change or remove the PIN",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "remove", Usage: "Remove PIN protection"},
				},
				Action: withClient(changePin),
			}, {
				Name:   "wipe",
				Usage:  "Erase the device storage",
				Action: withClient(wipe),
			}, {
				Name:  "settings",
				Usage: "Change the device label or passphrase protection",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "label", Usage: "New device label"},
					&cli.BoolFlag{Name: "passphrase", Usage: "Enable passphrase protection"},
				},
				Action: withClient(settings),
			}, {
				Name:   "clear-session",
				Usage:  "Forget the cached PIN and passphrase",
				Action: withClient(clearSession),
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatalf("fatal error, %v", err)
	}
}

func connect(cmd *cli.Command) (transport, error) {
	if addr := cmd.String("udp"); addr != "" {
		return dialUDP(addr)
	}

	dev, err := detectU2F()
	if err != nil {
		return nil, err
	}

	return &hidTransport{dev: dev}, nil
}

func withClient(f func(context.Context, *cli.Command, *client) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		t, err := connect(cmd)
		if err != nil {
			return err
		}
		defer t.Close()

		return f(ctx, cmd, newClient(t, os.Stdin))
	}
}

func features(ctx context.Context, _ *cli.Command, c *client) error {
	f, err := expect[*api.Features](ctx, c, &api.GetFeatures{})
	if err != nil {
		return err
	}
	log.Print(f.Print())
	return nil
}

func initialize(ctx context.Context, _ *cli.Command, c *client) error {
	f, err := expect[*api.Features](ctx, c, &api.Initialize{})
	if err != nil {
		return err
	}
	log.Print(f.Print())
	return nil
}

func success(ctx context.Context, c *client, m api.Message) error {
	s, err := expect[*api.Success](ctx, c, m)
	if err != nil {
		return err
	}
	log.Print(s.Message)
	return nil
}

func ping(ctx context.Context, cmd *cli.Command, c *client) error {
	return success(ctx, c, &api.Ping{
		Message:              cmd.Args().First(),
		ButtonProtection:     cmd.Bool("button"),
		PinProtection:        cmd.Bool("pin"),
		PassphraseProtection: cmd.Bool("passphrase"),
	})
}

func changePin(ctx context.Context, cmd *cli.Command, c *client) error {
	return success(ctx, c, &api.ChangePin{Remove: cmd.Bool("remove")})
}

func wipe(ctx context.Context, _ *cli.Command, c *client) error {
	return success(ctx, c, &api.WipeDevice{})
}

func settings(ctx context.Context, cmd *cli.Command, c *client) error {
	m := &api.ApplySettings{Label: cmd.String("label")}

	if cmd.IsSet("passphrase") {
		on := cmd.Bool("passphrase")
		m.UsePassphrase = &on
	}

	if m.Label == "" && m.UsePassphrase == nil {
		return fmt.Errorf("nothing to change, use --label or --passphrase")
	}

	return success(ctx, c, m)
}

func clearSession(ctx context.Context, _ *cli.Command, c *client) error {
	return success(ctx, c, &api.ClearSession{})
}
