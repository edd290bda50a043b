package library

import "freeread/internal/domain"

func defaultPassages() []domain.Passage {
	return []domain.Passage{
		{
			ID:         "stoic-morning",
			Category:   domain.CategoryPhilosophy,
			Title:      "The Stoic Morning",
			Subtitle:   "What the emperor told himself before breakfast",
			Difficulty: domain.DifficultyMedium,
			Source:     "Adapted from Marcus Aurelius, Meditations",
			Body: `Every morning the emperor wrote a note to himself before the day could argue with him. He reminded himself that he would meet people who were ungrateful, arrogant, dishonest and envious, and that none of this could truly harm him unless he agreed to be harmed.

The point was not to expect the worst of others. It was to decide, in advance and in calm, what kind of man he would be when the worst arrived. A judgement made at dawn is cheaper than one made in anger at noon.

You have power over your mind, not over outside events. Realize this, and you will find strength. The Stoics repeated the idea in a hundred forms because it is easy to understand and very difficult to practise.

What stands in the way becomes the way. An obstacle to one plan is simply material for another; the fire takes whatever is thrown on it and makes it burn brighter. The Stoic does not wish the obstacle away, he asks what it allows him to do.

None of this required a temple or a teacher. It required a few quiet minutes, an honest question and the willingness to be reminded of the same truth every single day, because we forget it every single day.`,
			Questions: []domain.QuizQuestion{
				{
					Prompt:      "Why did the emperor rehearse difficult encounters each morning?",
					Options:     []string{"To avoid people", "To decide calmly how he would respond", "To predict the future"},
					AnswerIndex: 1,
				},
				{
					Prompt:      "According to the passage, what do we control?",
					Options:     []string{"Outside events", "Other people", "Our own mind"},
					AnswerIndex: 2,
				},
			},
		},
		{
			ID:         "light-speed",
			Category:   domain.CategoryScience,
			Title:      "Measuring the Speed of Light",
			Subtitle:   "How a moon of Jupiter kept time for the universe",
			Difficulty: domain.DifficultyHard,
			Source:     "Free Read editorial, after Ole Romer's observations",
			Body: `In the seventeenth century almost everyone assumed that light was instantaneous. You open your eyes and the world is simply there. A Danish astronomer named Ole Romer was not trying to overturn that belief; he was trying to build a better clock.

Jupiter's moon Io slips behind the planet at regular intervals, and those eclipses were meant to serve sailors as a universal timepiece. But the observations refused to behave. When the Earth was moving away from Jupiter the eclipses ran late, and when it approached they ran early.

Romer made the bold guess that the clock was fine and the light was slow. The delay was the time light needed to cross the extra distance. A measurement error, taken seriously, became a discovery about the universe.

His number was too small by about a quarter, but the idea was right, and it changed the question. Light was no longer a given. It was something that travelled, something that could be measured, and therefore something that could be understood.

Good science often begins this way: not with a grand theory but with a stubborn observation that does not fit, and a person patient enough to believe the evidence over the expectation.`,
			Questions: []domain.QuizQuestion{
				{
					Prompt:      "What was Romer originally trying to build?",
					Options:     []string{"A telescope", "A better clock", "A theory of gravity"},
					AnswerIndex: 1,
				},
				{
					Prompt:      "What explained the late eclipses?",
					Options:     []string{"Light needed time to travel", "Io changed its orbit", "The instruments were faulty"},
					AnswerIndex: 0,
				},
			},
		},
		{
			ID:         "library-alexandria",
			Category:   domain.CategoryHistory,
			Title:      "The Slow Fire of Alexandria",
			Subtitle:   "Libraries are rarely lost in a single night",
			Difficulty: domain.DifficultyMedium,
			Source:     "Free Read editorial",
			Body: `The story most people know is a dramatic one: a great library, a single terrible fire, and the knowledge of the ancient world lost in an afternoon. It is a good story. It is also almost certainly wrong.

The library at Alexandria declined over centuries. Funding dried up as rulers changed their priorities. Scholars were expelled during political purges and did not come back. Papyrus rotted in the humid air unless someone paid to copy it again, and fewer and fewer people were paid to do so.

There were fires, and wars, and sieges. But the deeper cause was neglect, the quiet decision of each generation that preserving the past was somebody else's job. An empire does not need to burn its books; it only needs to stop reading them.

Historians are fond of the slow version because it is more useful. A single catastrophe teaches us to fear villains. A long decline teaches us to look at ourselves and ask what we are allowing to fade while we attend to more urgent things.

Every age has its own Alexandria. The question is never whether the fire will come, but whether anyone is still copying the scrolls when it does.`,
			Questions: []domain.QuizQuestion{
				{
					Prompt:      "What does the passage identify as the deeper cause of the library's loss?",
					Options:     []string{"A single fire", "Long neglect", "A foreign invasion"},
					AnswerIndex: 1,
				},
			},
		},
		{
			ID:         "habit-loop",
			Category:   domain.CategoryPsychology,
			Title:      "The Architecture of Habit",
			Subtitle:   "Why we do what we did yesterday",
			Difficulty: domain.DifficultyEasy,
			Source:     "Adapted from William James, The Principles of Psychology",
			Body: `Habit is the enormous flywheel of society. William James wrote that line more than a century ago, and it still describes the strange fact that most of what we do each day is not decided at all. It is repeated.

A habit begins as a choice and ends as a groove. The first time you take a particular path through a park you look around, hesitate, choose. By the hundredth time your feet carry you while your mind is elsewhere. The nervous system, James argued, is shaped by use like a river bed is shaped by water.

This is a mercy. If every action required full attention we could not tie our shoes and hold a conversation at the same time. Habit frees the mind for what is new by handling what is familiar.

It is also a warning. The same machinery that automates kindness automates irritation. Could you name the habits that chose your last hour for you? Every small repetition is a vote for the person you are becoming.

James's advice was practical: begin a new habit with as strong an initiative as possible, never allow an exception until the habit is rooted, and act on every resolution at the first chance you get, because good intentions that are never acted upon slowly weaken the will.`,
			Questions: []domain.QuizQuestion{
				{
					Prompt:      "What metaphor does James use for habit?",
					Options:     []string{"A flywheel", "A ladder", "A mirror"},
					AnswerIndex: 0,
				},
				{
					Prompt:      "Which is part of James's advice?",
					Options:     []string{"Allow occasional exceptions", "Start with a strong initiative", "Wait for motivation"},
					AnswerIndex: 1,
				},
			},
		},
		{
			ID:         "reading-slowly",
			Category:   domain.CategoryLiterature,
			Title:      "The Case for Reading Slowly",
			Subtitle:   "A book is a conversation, not a download",
			Difficulty: domain.DifficultyEasy,
			Source:     "Free Read editorial",
			Body: `We measure reading the way we measure everything else now: pages per hour, books per year, streaks and badges. But a book is not a file to be transferred into the head. It is a voice, and voices need time to be heard.

When you read slowly you notice the author's choices. Why this word and not its neighbour? Why does the sentence break here? A great novel is built out of thousands of such decisions, and the reader who rushes past them receives the plot and misses the book.

Slow reading is also how a story becomes yours. The characters you remember for decades are rarely the ones you met in a hurry. They are the ones you lived beside for a few weeks, whose words you read twice because they surprised you.

None of this means every page deserves the same patience. Some books are meant to be swallowed whole. But the best ones ask to be chewed, and they repay the reader who gives them the attention they were written with.

Try it with a single chapter. Read it once for the story and once for the sentences. You may find that the second reading is where the real book was hiding all along.`,
			Questions: []domain.QuizQuestion{
				{
					Prompt:      "What does the reader who rushes receive, according to the passage?",
					Options:     []string{"The plot but not the book", "Nothing at all", "A deeper understanding"},
					AnswerIndex: 0,
				},
			},
		},
		{
			ID:         "sea-poem",
			Category:   domain.CategoryPoetry,
			Title:      "What the Sea Keeps",
			Subtitle:   "On poems that return like tides",
			Difficulty: domain.DifficultyMedium,
			Source:     "Free Read editorial",
			Body: `Poets have always gone down to the sea when they had something they could not say on land. The sea does not answer, which is exactly why it is such a good listener. You can pour grief into it and it gives back only the sound of its own breathing.

A poem about the sea is rarely about water. It is about distance, and time, and the things that leave and do not come back. The tide goes out every night; the heart learns, slowly, that it also comes in again.

Rhyme works a little like the tide. A sound goes out at the end of one line and returns at the end of another, changed by the journey. The pleasure is not surprise but recognition: the moment you hear the wave you were waiting for.

Read a sea poem aloud and notice how your breathing follows the lines. Long lines pull you out; short ones bring you back. The poet has built a shoreline out of syllables and you are walking on it.

Perhaps that is why these poems last. The sea outlives every sorrow poured into it, and a good poem, patient as water, outlives the sorrow that made it.`,
			Questions: []domain.QuizQuestion{
				{
					Prompt:      "How does the passage compare rhyme to the sea?",
					Options:     []string{"Both are unpredictable", "A sound leaves and returns, like the tide", "Both are loud"},
					AnswerIndex: 1,
				},
			},
		},
		{
			ID:         "pin-factory",
			Category:   domain.CategoryEconomics,
			Title:      "The Pin Factory",
			Subtitle:   "Adam Smith and the power of dividing work",
			Difficulty: domain.DifficultyMedium,
			Source:     "Adapted from Adam Smith, The Wealth of Nations",
			Body: `Adam Smith opened his great book not with kings or gold but with a small workshop that made pins. One man draws out the wire, another straightens it, a third cuts it, a fourth points it, and so on through eighteen distinct operations.

Ten workers organised this way, Smith reported, could make upwards of forty-eight thousand pins in a day. A single worker doing every step alone might not make twenty. The wealth of nations, he argued, begins in this humble multiplication of labour.

Division of labour raises output for three reasons: each worker grows more skilled at a narrow task, no time is lost switching between tasks, and simple repeated motions invite the invention of machines to perform them.

Smith was not naive about the cost. Later in the same book he warned that a man who spends his whole life performing a few simple operations may lose the habit of thinking, and he called for public education as the remedy.

The pin factory is still with us, stretched now across oceans and supply chains. The question Smith left open is the one we still argue about: how to keep the wealth that specialisation creates without narrowing the people who create it.`,
			Questions: []domain.QuizQuestion{
				{
					Prompt:      "How many distinct operations did Smith describe in pin making?",
					Options:     []string{"Three", "Eighteen", "Forty-eight"},
					AnswerIndex: 1,
				},
				{
					Prompt:      "What remedy did Smith propose for the narrowing effect of specialisation?",
					Options:     []string{"Higher wages", "Public education", "Fewer machines"},
					AnswerIndex: 1,
				},
			},
		},
		{
			ID:         "walden-woods",
			Category:   domain.CategoryNature,
			Title:      "Why Thoreau Went to the Woods",
			Subtitle:   "Two years, two months and two days at Walden Pond",
			Difficulty: domain.DifficultyEasy,
			Source:     "Adapted from Henry David Thoreau, Walden",
			Body: `In the spring of 1845 Henry David Thoreau borrowed an axe and walked into the woods near Walden Pond to build a small house. He was not running away from the world. He wanted, he said, to live deliberately, to front only the essential facts of life.

The house cost him twenty-eight dollars and twelve and a half cents. He grew beans, read Homer, walked for hours and kept careful notes on the ice, the birds and the slow turning of the seasons. The forest became both his teacher and his laboratory.

Thoreau noticed that most men lead lives of quiet desperation, working to buy things that require more work to keep. In the woods he discovered how little he actually needed and how much time was left over when he stopped wanting more.

He was never far from town. His mother did some of his laundry and he walked to the village most days. Critics have enjoyed pointing this out, but it misses the point: the experiment was not about isolation. It was about attention.

When he left after two years he said he had several more lives to live. The woods had not given him an escape. They had given him a way of seeing that he could carry anywhere, even back into the noise.`,
			Questions: []domain.QuizQuestion{
				{
					Prompt:      "What did Thoreau say he wanted to do in the woods?",
					Options:     []string{"Escape society forever", "Live deliberately", "Start a farm"},
					AnswerIndex: 1,
				},
			},
		},
	}
}

func defaultEditorial() []EditorialCard {
	return []EditorialCard{
		{
			ID:       "editorial-seneca-time",
			Title:    "On the Shortness of Life",
			Quote:    "It is not that we have a short time to live, but that we waste a lot of it.",
			Body:     "Seneca wrote to his friend Paulinus that life is long enough if we know how to use it. The problem is not the length of our days but the way we scatter them across other people's demands, small distractions and plans postponed until a tomorrow that never arrives.",
			Category: domain.CategoryPhilosophy,
			Source:   "Seneca, On the Shortness of Life",
		},
		{
			ID:       "editorial-darwin-bank",
			Title:    "The Tangled Bank",
			Quote:    "There is grandeur in this view of life, with its several powers.",
			Body:     "Darwin closed his most famous book by asking the reader to contemplate a tangled bank, clothed with plants, birds singing on the bushes, insects flitting about and worms crawling through the damp earth, and to reflect that all of it was produced by laws acting around us.",
			Category: domain.CategoryScience,
			Source:   "Charles Darwin, On the Origin of Species",
		},
		{
			ID:       "editorial-keats-beauty",
			Title:    "A Thing of Beauty",
			Quote:    "A thing of beauty is a joy for ever: its loveliness increases; it will never pass into nothingness.",
			Body:     "Keats opened Endymion with a promise that beauty keeps a quiet bower for us, full of sweet dreams and health and quiet breathing. The line has outlived the long poem it introduces, which is perhaps the best evidence that he was right.",
			Category: domain.CategoryPoetry,
			Source:   "John Keats, Endymion",
		},
		{
			ID:       "editorial-muir-mountains",
			Title:    "The Mountains Are Calling",
			Quote:    "In every walk with nature one receives far more than he seeks.",
			Body:     "John Muir spent whole summers in the Sierra Nevada with little more than bread, tea and a notebook. He returned with the conviction that wild places are not a luxury but a necessity, and that a walk among the trees can restore a mind worn thin by the city.",
			Category: domain.CategoryNature,
			Source:   "John Muir, Steep Trails",
		},
	}
}
