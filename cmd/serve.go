package cmd

import (
	"GardenTrack/routes"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE:  runServe,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, serveCmd} {
		c.Flags().StringVarP(&servePort, "port", "p", "", "listen port (overrides PORT)")
	}
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	e, err := setup(ctx)
	if err != nil {
		return err
	}
	defer e.close(ctx)

	if e.cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.NewRouter(e.store, e.logger)
	if err != nil {
		return err
	}

	port := e.cfg.Port
	if servePort != "" {
		port = servePort
	}
	e.logger.Info("Starting server",
		zap.String("port", port),
		zap.String("store", e.cfg.StoreDriver),
		zap.String("env", e.cfg.Env))

	return router.Run(":" + port)
}
