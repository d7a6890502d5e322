package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var imageSize string

// imageCmd builds a full image URL from a TMDb file path
var imageCmd = &cobra.Command{
	Use:   "image <file-path>",
	Short: "Print the full URL for an image path",
	Long: `Print the full URL for a poster, backdrop or profile path such as
/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg. Without --size the configured image size is
used; --sizes lists the sizes TMDb accepts.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runImage,
}

var listSizes bool

func init() {
	rootCmd.AddCommand(imageCmd)

	imageCmd.Flags().StringVarP(&imageSize, "size", "s", "", "image size, e.g. w500 or original")
	imageCmd.Flags().BoolVar(&listSizes, "sizes", false, "list the valid image sizes")
}

func runImage(cmd *cobra.Command, args []string) error {
	if listSizes {
		images := client.Configuration().Images
		return render(images, func(w io.Writer) {
			row(w, "Poster:", strings.Join(images.PosterSizes, " "))
			row(w, "Backdrop:", strings.Join(images.BackdropSizes, " "))
			row(w, "Profile:", strings.Join(images.ProfileSizes, " "))
			row(w, "Logo:", strings.Join(images.LogoSizes, " "))
		})
	}

	if len(args) == 0 {
		return fmt.Errorf("an image path is required unless --sizes is given")
	}

	size := imageSize
	if size == "" {
		size = cfg.Output.ImageSize
	}

	u, err := client.CreateImageURL(args[0], size)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, u.String())
	return err
}
