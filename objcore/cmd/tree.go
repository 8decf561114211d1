package cmd

import (
	"fmt"

	"github.com/sarchlab/objcore/container"
	"github.com/sarchlab/objcore/naming"
	"github.com/sarchlab/objcore/tracking"
	"github.com/spf13/cobra"
	"github.com/syifan/goseth"
)

type node struct {
	*container.ContainerBase
	naming.NamedBase
	naming.ScopedBase
	tracking.TrackableBase
}

func newNode() *node {
	n := &node{}
	n.ContainerBase = container.NewContainerBase(n)

	return n
}

// nodeView is what the dump shows of a node. It only holds values that the
// serializer supports.
type nodeView struct {
	Name      string
	FullName  string
	ShortName string
	Children  []*nodeView
}

func viewOf(n *node, authority *naming.Authority) *nodeView {
	v := &nodeView{
		Name:      n.Name(),
		FullName:  authority.Unshorten(n.Name()),
		ShortName: n.ShortName(),
	}

	for _, e := range n.Elements() {
		child, ok := e.(*node)
		if !ok {
			continue
		}

		v.Children = append(v.Children, viewOf(child, authority))
	}

	return v
}

var treeCmd = &cobra.Command{
	Use:   "tree ROOT CHILD...",
	Short: "Attach a chain of objects and print their long names.",
	Long: "`tree app form fields` attaches form to app and fields to form, " +
		"then prints the long name of every object and its expanded form.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		authority, err := newAuthority()
		if err != nil {
			return err
		}

		root, chain, err := buildChain(authority, args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, n := range chain {
			fmt.Fprintf(out, "%s (%d) = %s\n",
				n.Name(), naming.Length(n.Name()),
				authority.Unshorten(n.Name()))
		}

		dump, _ := cmd.Flags().GetBool("dump")
		if !dump {
			return nil
		}

		depth, _ := cmd.Flags().GetInt("depth")

		serializer := goseth.NewSerializer()
		serializer.SetRoot(viewOf(root, authority))
		serializer.SetMaxDepth(depth)

		return serializer.Serialize(out)
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().Bool("dump", false, "Serialize the root object as JSON")
	treeCmd.Flags().Int("depth", -1,
		"Maximum depth of the dump, negative for unlimited")
}

func buildChain(
	authority *naming.Authority,
	names []string,
) (*node, []*node, error) {
	root := newNode()
	root.SetName(names[0])
	root.SetAuthority(authority)

	chain := []*node{root}
	parent := root

	for _, short := range names[1:] {
		child := newNode()

		_, err := parent.Add(child, short)
		if err != nil {
			return nil, nil, err
		}

		logger.Debug().
			Str("owner", parent.Name()).
			Str("short", short).
			Str("name", child.Name()).
			Msg("attached")

		chain = append(chain, child)
		parent = child
	}

	return root, chain, nil
}
